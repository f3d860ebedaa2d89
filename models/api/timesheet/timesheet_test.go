package timesheetapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEntryRequestValidate(t *testing.T) {
	valid := EntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  "prj-1",
		EntryDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Hours:      7.5,
	}
	require.NoError(t, valid.Validate())

	cases := map[string]EntryRequest{
		"missing employee": {ProjectID: "prj-1", EntryDate: valid.EntryDate, Hours: 4},
		"missing project":  {EmployeeID: "emp-1", EntryDate: valid.EntryDate, Hours: 4},
		"missing date":     {EmployeeID: "emp-1", ProjectID: "prj-1", Hours: 4},
		"negative hours":   {EmployeeID: "emp-1", ProjectID: "prj-1", EntryDate: valid.EntryDate, Hours: -1},
		"over eight hours": {EmployeeID: "emp-1", ProjectID: "prj-1", EntryDate: valid.EntryDate, Hours: 8.5},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, req.Validate())
		})
	}
}

func TestEntryRequestBoundaryHours(t *testing.T) {
	req := EntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  "prj-1",
		EntryDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	req.Hours = 0
	require.NoError(t, req.Validate())
	req.Hours = 8
	require.NoError(t, req.Validate())
}
