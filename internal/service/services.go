package service

import (
	"github.com/MKhiriev/soul-scribe/internal/adapter"
	"github.com/MKhiriev/soul-scribe/internal/config"
	"github.com/MKhiriev/soul-scribe/internal/logger"
	"github.com/MKhiriev/soul-scribe/internal/store"
	"github.com/MKhiriev/soul-scribe/models"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	MoodService    MoodService
	ChatService    ChatService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, chatAdapter adapter.ChatAdapter, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	assembler := NewContextAssembler(storages.UserRepository, storages.MoodRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, NewTokenIssuer(cfg.App), logger),
		ProfileService: NewProfileService(storages.UserRepository, logger),
		MoodService:    NewMoodService(storages.MoodRepository, logger),
		ChatService:    NewChatService(chatAdapter, assembler, cfg.Adapter.Chat, logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
