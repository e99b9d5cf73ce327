package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewLogger(t *testing.T) {
	Convey("Given a config asking for debug JSON logs", t, func() {
		cfg := &Config{}
		cfg.Server.Name = "EmployeeManager"
		cfg.Log.Level = "debug"
		cfg.Log.Format = "json"

		var buf bytes.Buffer
		logger := cfg.NewLogger(&buf)

		Convey("It should emit debug entries as JSON", func() {
			So(logger.GetLevel(), ShouldEqual, log.DebugLevel)

			logger.Debug("leave applied", "employee", "E001")

			entry := map[string]any{}
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["msg"], ShouldEqual, "leave applied")
			So(entry["employee"], ShouldEqual, "E001")
			So(entry["prefix"], ShouldEqual, "EmployeeManager")
		})
	})

	Convey("Given an unknown level", t, func() {
		cfg := &Config{}
		cfg.Log.Level = "chatty"

		Convey("It should fall back to info", func() {
			So(cfg.NewLogger(&bytes.Buffer{}).GetLevel(), ShouldEqual, log.InfoLevel)
		})
	})
}
