package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg := New(viper.New())

		Convey("It should fall back to defaults", func() {
			So(cfg.Server.Name, ShouldEqual, "EmployeeManager")
			So(cfg.Server.Transport, ShouldEqual, TransportStdio)
			So(cfg.Log.Level, ShouldEqual, "info")
			So(cfg.Chart.Width, ShouldEqual, 800)
			So(cfg.Chart.Height, ShouldEqual, 500)
			So(cfg.Chart.Cap, ShouldEqual, 20)
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("EMPLOYEE_MANAGER_SERVER_TRANSPORT", "SSE")
	t.Setenv("EMPLOYEE_MANAGER_SERVER_ADDRESS", ":9090")
	t.Setenv("EMPLOYEE_MANAGER_CHART_CAP", "30")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_DEFAULT_CHANNEL_ID", "C123")

	Convey("Given environment overrides", t, func() {
		cfg := New(viper.New())

		Convey("It should apply them", func() {
			So(cfg.Server.Transport, ShouldEqual, TransportSSE)
			So(cfg.Server.Address, ShouldEqual, ":9090")
			So(cfg.Chart.Cap, ShouldEqual, 30)
			So(cfg.Slack.BotToken, ShouldEqual, "xoxb-test")
			So(cfg.Slack.ChannelID, ShouldEqual, "C123")
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}

func TestNewFromFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\nchart:\n  width: 1024\n"), 0o600)
		So(err, ShouldBeNil)

		v := viper.New()
		v.SetConfigFile(path)
		So(v.ReadInConfig(), ShouldBeNil)

		cfg := New(v)

		Convey("It should read values from the file", func() {
			So(cfg.Log.Level, ShouldEqual, "debug")
			So(cfg.Log.Format, ShouldEqual, "json")
			So(cfg.Chart.Width, ShouldEqual, 1024)
			So(cfg.Chart.Height, ShouldEqual, 500)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a default configuration", t, func() {
		cfg := New(viper.New())

		Convey("When the transport is unknown", func() {
			cfg.Server.Transport = "carrier-pigeon"

			Convey("It should fail validation", func() {
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown transport")
			})
		})

		Convey("When the chart size is not positive", func() {
			cfg.Chart.Height = 0

			Convey("It should fail validation", func() {
				So(cfg.Validate(), ShouldNotBeNil)
			})
		})

		Convey("When a Slack token has no channel", func() {
			cfg.Slack.BotToken = "xoxb-test"
			cfg.Slack.ChannelID = ""

			Convey("It should fail validation", func() {
				err := cfg.Validate()
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "no channel id")
			})
		})

		Convey("When the log level is unknown", func() {
			cfg.Log.Level = "chatty"

			Convey("It should fail validation", func() {
				So(cfg.Validate(), ShouldNotBeNil)
			})
		})
	})
}
