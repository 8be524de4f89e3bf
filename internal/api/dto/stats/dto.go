package stats

// StatsRequest Тело POST/PUT /stats. Значения сохраняются как есть
type StatsRequest struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Total  int `json:"total"`
}

// StatsResponse Сохраненная строка общей статистики
type StatsResponse struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Total  int `json:"total"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
