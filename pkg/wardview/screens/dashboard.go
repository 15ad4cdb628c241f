package screens

// DashboardModel is the start screen: one row per section of the client.
type DashboardModel struct {
	list
}

// NewDashboard returns the dashboard menu.
func NewDashboard() *DashboardModel {
	m := &DashboardModel{}
	m.setItems([]MenuItem{
		{Target: PatientList},
		{Target: DoctorList},
		{Target: AppointmentList},
		{Target: Billing},
	})
	return m
}
