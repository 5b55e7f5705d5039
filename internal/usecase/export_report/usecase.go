package export_report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/labcentral/facility-service/internal/domain"
)

const sheetName = "Bookings"

// UseCase builds the bookings report workbook.
//
// Fines are computed at export time, so an overdue booking shows its
// current fine even if no engine tick has run since it went overdue.
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates a new export-report use case
func NewUseCase(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute renders every booking into an xlsx workbook
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	bookings, err := uc.bookingRepo.List(ctx, nil)
	if err != nil {
		uc.logger.Error("ExportReport: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: failed to rename sheet: %v", ErrInternal, err)
	}

	for i, header := range []string{"ID", "Equipment", "Researcher", "Dept", "Period", "Status", "Fine"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("%w: failed to write header: %v", ErrInternal, err)
		}
	}

	for i, b := range bookings {
		rowIdx := i + 2

		period := fmt.Sprintf("%s - %s",
			b.StartTime.Format(domain.DateFormat),
			b.EndTime.Format(domain.DateFormat))
		fine := domain.Fine(now, b.EndTime, b.Status)

		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIdx), b.ShortID())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIdx), uc.equipmentName(ctx, b.EquipmentID))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIdx), b.FacultyName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIdx), b.Department)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIdx), period)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIdx), string(b.Status))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIdx), fmt.Sprintf("$%d", fine))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		uc.logger.Error("ExportReport: failed to serialize workbook: %v", err)
		return nil, fmt.Errorf("%w: failed to serialize workbook: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportReport: exported %d bookings", len(bookings))

	return &Response{
		Filename: fmt.Sprintf("LabCentral_Report_%d.xlsx", now.UnixMilli()),
		Content:  buf.Bytes(),
	}, nil
}

func (uc *UseCase) equipmentName(ctx context.Context, id string) string {
	eq, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warn("ExportReport: failed to get equipment id=%s: %v", id, err)
		return "Unknown Equipment"
	}
	return eq.Name
}
