package get_banner

import (
	notificationsService "github.com/labcentral/facility-service/internal/service/notifications"
)

type BannerProvider interface {
	Banner() *notificationsService.Banner
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
