package ports

import "xaudio/internal/domain"

type ConfigService interface {
	Load() (domain.Config, error)
}
