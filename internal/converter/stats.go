package converter

import (
	"trading_game/internal/api/dto/stats"
	"trading_game/internal/model"
)

func ToGameStats(req stats.StatsRequest) model.GameStats {
	return model.GameStats{
		Wins:   req.Wins,
		Losses: req.Losses,
		Total:  req.Total,
	}
}

func ToStatsResponse(s model.GameStats) stats.StatsResponse {
	return stats.StatsResponse{
		Wins:   s.Wins,
		Losses: s.Losses,
		Total:  s.Total,
	}
}

// FromStatsResponse Обратное преобразование для HTTP клиента игры
func FromStatsResponse(resp stats.StatsResponse) model.GameStats {
	return model.GameStats{
		Wins:   resp.Wins,
		Losses: resp.Losses,
		Total:  resp.Total,
	}
}

func ToStatsRequest(s model.GameStats) stats.StatsRequest {
	return stats.StatsRequest{
		Wins:   s.Wins,
		Losses: s.Losses,
		Total:  s.Total,
	}
}
