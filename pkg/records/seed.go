package records

// DefaultLeaveRecords returns the employees the server starts with.
func DefaultLeaveRecords() []LeaveRecord {
	return []LeaveRecord{
		{EmployeeID: "E001", Balance: 18, History: []string{"2024-12-25", "2025-01-01"}},
		{EmployeeID: "E002", Balance: 20},
	}
}

// DefaultTaskRecords returns the task lists the server starts with.
func DefaultTaskRecords() []TaskRecord {
	return []TaskRecord{
		{
			EmployeeID: "E001",
			Tasks:      []string{"Prepare report", "Attend meeting"},
			Completed:  []string{"Prepare report"},
		},
		{
			EmployeeID: "E002",
			Tasks:      []string{"Update website", "Backup database"},
		},
	}
}
