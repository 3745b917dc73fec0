package models

// AnalyticsSnapshot is the aggregate counter set returned by GET /analytics.
// Absent fields decode to 0.
type AnalyticsSnapshot struct {
	TotalQueries int `json:"total_queries"`
	Exam         int `json:"exam"`
	Scholarship  int `json:"scholarship"`
	Library      int `json:"library"`
	Notice       int `json:"notice"`
}

// ChartLabels are the fixed chart categories, in display order.
var ChartLabels = []string{"Exam", "Scholarship", "Library", "Notice"}

// ChartValues maps the snapshot onto ChartLabels in the same order.
func (s AnalyticsSnapshot) ChartValues() []float64 {
	return []float64{
		float64(s.Exam),
		float64(s.Scholarship),
		float64(s.Library),
		float64(s.Notice),
	}
}
