package service

import (
	"context"

	"github.com/MKhiriev/go-review-fetcher/models"
)

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
