package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth             AuthService
	User             UserService
	Package          PackageService
	Story            StoryService
	Booking          BookingService
	Payment          PaymentService
	GuideApplication GuideApplicationService
	Admin            AdminService
}

func NewService(repo *repository.Repository, intents IntentCreator, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:             NewAuthService(repo.User, config, log),
		User:             NewUserService(repo, log),
		Package:          NewPackageService(repo.Package, log),
		Story:            NewStoryService(repo.Story, log),
		Booking:          NewBookingService(repo.Booking, log),
		Payment:          NewPaymentService(repo, intents, log),
		GuideApplication: NewGuideApplicationService(repo.GuideApplication, log),
		Admin:            NewAdminService(repo, log),
	}
}
