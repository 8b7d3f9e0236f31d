package services

import (
	"strings"

	"github.com/terraincognita07/prospecta/internal/models"
)

const TopCommercialsLimit = 5

type VisitRanker interface {
	TopCommercialsByVisits(project string, limit int) ([]models.VisitCount, error)
}

type RankingService struct {
	visits VisitRanker
}

func NewRankingService(visits VisitRanker) *RankingService {
	return &RankingService{visits: visits}
}

// TopCommercials returns at most TopCommercialsLimit commercials ordered by
// visit count. An empty project ranks across both projects.
func (service *RankingService) TopCommercials(project string) ([]models.VisitCount, error) {
	project = strings.TrimSpace(project)
	if project != "" && !models.IsKnownProject(project) {
		return nil, ErrUnknownProject
	}

	ranking, err := service.visits.TopCommercialsByVisits(project, TopCommercialsLimit)
	if err != nil {
		return nil, err
	}
	if len(ranking) > TopCommercialsLimit {
		ranking = ranking[:TopCommercialsLimit]
	}
	return ranking, nil
}
