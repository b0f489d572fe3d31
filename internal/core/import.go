package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voidshard/fortitrack/pkg/errors"
	"github.com/voidshard/fortitrack/pkg/structs"
)

// importRow is one job in an import document. Keys match the export format of the
// dispatch UI (camelCase), for both JSON keys & CSV headers.
type importRow struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	AssignedTo          string `json:"assignedTo"`
	StartLocation       string `json:"startLocation"`
	MaterialsNeeded     string `json:"materialsNeeded"`
	EstimatedCompletion string `json:"estimatedCompletion"`
	ClosingNotes        string `json:"closingNotes"`
}

// validate applies the import's own rules; the rest are those of CreateJob.
// Imported rows must be titled, a job made by hand need not be.
func (r *importRow) validate() error {
	if strings.TrimSpace(r.AssignedTo) == "" {
		return errors.ErrNoAssignee
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.ErrNoTitle
	}
	return nil
}

func (r *importRow) spec() *structs.JobSpec {
	return &structs.JobSpec{
		Title:               r.Title,
		Description:         r.Description,
		AssignedTo:          r.AssignedTo,
		StartLocation:       r.StartLocation,
		MaterialsNeeded:     r.MaterialsNeeded,
		EstimatedCompletion: r.EstimatedCompletion,
		ClosingNotes:        r.ClosingNotes,
	}
}

// ImportJobs creates one job per row of the given document.
//
// Rows are independent; a bad row is counted & reported ("Row N: reason", N from 1) and
// later rows are still created. A document that can't be parsed at all creates nothing
// & returns ErrInvalidArg along with a result describing why.
func (s *Service) ImportJobs(ctx context.Context, actor *structs.User, format structs.ImportFormat, data []byte) (*structs.ImportResult, error) {
	err := requireDispatcher(actor)
	if err != nil {
		return nil, err
	}

	var rows []*importRow
	var rowErrs map[int]error
	switch format {
	case structs.ImportJSON:
		rows, rowErrs, err = parseJSONRows(data)
		if err != nil {
			return failedImport("Invalid JSON: %v", err)
		}
	case structs.ImportCSV:
		rows, err = parseCSVRows(data)
		if err != nil {
			return failedImport("Invalid CSV: %v", err)
		}
	default:
		return nil, fmt.Errorf("%w import format %q", errors.ErrNotSupported, format)
	}

	result := &structs.ImportResult{Errors: []string{}, Jobs: []*structs.Job{}}
	for i, row := range rows {
		err, bad := rowErrs[i]
		if !bad {
			err = row.validate()
		}
		if err == nil {
			var job *structs.Job
			job, err = s.createJob(ctx, actor, row.spec())
			if err == nil {
				result.Success++
				result.Jobs = append(result.Jobs, job)
				continue
			}
		}
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
	}

	s.log.WithFields(logrus.Fields{"user": actor.ID, "success": result.Success, "failed": result.Failed}).Info("jobs imported")
	if result.Failed > 0 {
		s.notifyUser(ctx, actor, structs.SeverityError, fmt.Sprintf("Imported %d jobs, %d failed", result.Success, result.Failed))
	} else {
		s.notifyUser(ctx, actor, structs.SeveritySuccess, fmt.Sprintf("Imported %d jobs", result.Success))
	}
	return result, nil
}

func failedImport(format string, err error) (*structs.ImportResult, error) {
	msg := fmt.Sprintf(format, err)
	return &structs.ImportResult{Errors: []string{msg}}, fmt.Errorf("%w %s", errors.ErrInvalidArg, msg)
}

// parseJSONRows reads a JSON array of jobs. Elements that aren't valid jobs are
// returned as errors by index rather than failing the whole document.
func parseJSONRows(data []byte) ([]*importRow, map[int]error, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil, fmt.Errorf("input must be a JSON array")
	}

	raw := []json.RawMessage{}
	err := json.Unmarshal(trimmed, &raw)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]*importRow, len(raw))
	bad := map[int]error{}
	for i, r := range raw {
		row := &importRow{}
		err = json.Unmarshal(r, row)
		if err != nil {
			bad[i] = fmt.Errorf("%w %v", errors.ErrInvalidArg, err)
		}
		rows[i] = row
	}
	return rows, bad, nil
}

// parseCSVRows reads CSV with a header row. Headers are matched to fields ignoring case,
// unknown columns are ignored.
func parseCSVRows(data []byte) ([]*importRow, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row")
	} else if err != nil {
		return nil, err
	}

	columns := map[int]func(row *importRow, v string){}
	for i, h := range header {
		set := csvColumn(h)
		if set != nil {
			columns[i] = set
		}
	}

	rows := []*importRow{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		row := &importRow{}
		for i, v := range record {
			set, ok := columns[i]
			if ok {
				set(row, strings.TrimSpace(v))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// csvColumn returns a setter for the named column, or nil if we don't know it
func csvColumn(name string) func(row *importRow, v string) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
	case "title":
		return func(row *importRow, v string) { row.Title = v }
	case "description":
		return func(row *importRow, v string) { row.Description = v }
	case "assignedto", "assigned_to":
		return func(row *importRow, v string) { row.AssignedTo = v }
	case "startlocation", "start_location":
		return func(row *importRow, v string) { row.StartLocation = v }
	case "materialsneeded", "materials_needed":
		return func(row *importRow, v string) { row.MaterialsNeeded = v }
	case "estimatedcompletion", "estimated_completion":
		return func(row *importRow, v string) { row.EstimatedCompletion = v }
	case "closingnotes", "closing_notes":
		return func(row *importRow, v string) { row.ClosingNotes = v }
	}
	return nil
}
