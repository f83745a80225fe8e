package timetracking

type ClockInRequest struct {
	Source string  `json:"source"`
	Notes  *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type TimeEntryResponse struct {
	ID            string  `json:"id"`
	StaffID       string  `json:"staff_id"`
	WorkDate      string  `json:"work_date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out,omitempty"`
	Status        string  `json:"status"`
	Source        string  `json:"source"`
	WorkedMinutes int     `json:"worked_minutes"`
	Notes         *string `json:"notes,omitempty"`
}
