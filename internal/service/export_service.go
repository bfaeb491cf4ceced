package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/amenibouabdallah/JOBS-sub001/config"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
)

// ExportService renders placement and program data in exchange formats.
type ExportService interface {
	// PlacementsCSV returns one row per participant: first name, last
	// name, place, JE name, zone name. Values are joined raw; embedded
	// commas are not escaped, matching the historical export consumers.
	PlacementsCSV(ctx context.Context) ([]byte, error)
	PlacementsXLSX(ctx context.Context) ([]byte, error)
	// ProgramICS renders the activity schedule as an iCalendar feed.
	ProgramICS(ctx context.Context) ([]byte, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── PlacementsCSV ──────────────────────

func (s *exportService) PlacementsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.placementRows(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("first_name,last_name,place,je,zone\n")
	for _, row := range rows {
		buf.WriteString(strings.Join(row, ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ────────────────────── PlacementsXLSX ──────────────────────

func (s *exportService) PlacementsXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.placementRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Placements"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	headers := []string{"First name", "Last name", "Place", "JE", "Zone"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(sheet, "A", "E", 20); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("writing placement workbook failed", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}

// ────────────────────── ProgramICS ──────────────────────

func (s *exportService) ProgramICS(ctx context.Context) ([]byte, error) {
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("listing activities failed", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//" + s.cfg.Event.Name + "//Program//FR")
	cal.SetName(s.cfg.Event.Name)
	cal.SetTimezoneId(s.cfg.Event.Timezone)

	for i := range activities {
		a := &activities[i]
		event := cal.AddEvent(a.ActivityID + "@jobs2026")
		event.SetCreatedTime(a.CreatedAt)
		event.SetDtStampTime(time.Now())
		event.SetStartAt(a.StartsAt)
		event.SetEndAt(a.EndsAt)
		event.SetSummary(a.Name)
		if a.Description != "" {
			event.SetDescription(a.Description)
		}
		if a.Salle != nil {
			location := a.Salle.Name
			if a.Salle.Floor != "" {
				location = fmt.Sprintf("%s (floor %s)", a.Salle.Name, a.Salle.Floor)
			}
			event.SetLocation(location)
		}
	}

	return []byte(cal.Serialize()), nil
}

// ── helpers ──

// placementRows flattens every participant into the export row order:
// first name, last name, place, JE name, zone name.
func (s *exportService) placementRows(ctx context.Context) ([][]string, error) {
	participants, err := s.repo.Participant.ListAll(ctx)
	if err != nil {
		s.logger.Error("listing participants failed", zap.Error(err))
		return nil, err
	}

	zones, err := s.repo.Zone.List(ctx)
	if err != nil {
		s.logger.Error("listing zones failed", zap.Error(err))
		return nil, err
	}
	zoneByJe := make(map[string]string, len(zones))
	for i := range zones {
		if zones[i].JeID != nil {
			zoneByJe[*zones[i].JeID] = zones[i].Name
		}
	}

	rows := make([][]string, 0, len(participants))
	for i := range participants {
		p := &participants[i]
		place := ""
		if p.PlaceName != nil {
			place = *p.PlaceName
		}
		jeName := ""
		if p.Je != nil {
			jeName = p.Je.Name
		}
		rows = append(rows, []string{p.FirstName, p.LastName, place, jeName, zoneByJe[p.JeID]})
	}
	return rows, nil
}
