package export_report

import (
	"context"

	exportReport "github.com/labcentral/facility-service/internal/usecase/export_report"
)

type ExportReportUseCase interface {
	Execute(ctx context.Context) (*exportReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
