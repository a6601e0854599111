package services

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"

	"github.com/alimgiray/workhours/internal/models"
)

// ExportService renders a country's holiday list as downloadable documents
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ToExcel renders holidays as an xlsx workbook with one sheet named after
// the country.
func (s *ExportService) ToExcel(country string, holidays []*models.Holiday) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := models.NormalizeCountry(country)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "A1", "Date"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "B1", "Description"); err != nil {
		return nil, err
	}

	for i, holiday := range holidays {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), holiday.Date); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), holiday.Description); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// ToCalendar renders holidays as an iCalendar feed of all-day events
func (s *ExportService) ToCalendar(country string, holidays []*models.Holiday) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//workhours//holiday calendar//EN")
	cal.SetXWRCalName(fmt.Sprintf("Public holidays (%s)", models.NormalizeCountry(country)))

	for _, holiday := range holidays {
		date, err := time.Parse(models.CivilDateFormat, holiday.Date)
		if err != nil {
			return "", err
		}

		event := cal.AddEvent(holiday.ID)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(holiday.Description)
		event.SetDtStampTime(holiday.UpdatedAt)
	}

	return cal.Serialize(), nil
}
