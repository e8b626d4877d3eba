// Package sheetsvc reads and writes the school's spreadsheet-backed tables.
//
// Rarely-changing tables (rosters, curriculum, billing) are fetched from
// their published CSV exports first, falling back transparently to the live
// web-app endpoint when the export is unreachable or serves something that is
// not CSV. The Score table always goes to the live endpoint so a read right
// after a write sees the write. All mutations go to the live endpoint.
package sheetsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/google/uuid"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

// The web app accepts mutation bodies as text/plain to stay a CORS "simple
// request"; it parses the JSON itself.
const postContentType = "text/plain;charset=utf-8"

type Client struct {
	conf  core.SheetsConfig
	http  *http.Client
	log   core.Logger
	snaps *snapshotStore
}

var _ school.Source = (*Client)(nil)

func NewClient(conf *core.Config, log core.Logger) *Client {
	return &Client{
		conf:  conf.Sheets,
		http:  &http.Client{Timeout: conf.Sheets.FetchTimeout},
		log:   log,
		snaps: newSnapshotStore(),
	}
}

// Reads

func (c *Client) Teachers(ctx context.Context) ([]school.Teacher, error) {
	records, err := c.fetchTable(ctx, school.TableTeacher)
	if err != nil {
		return nil, err
	}
	teachers := make([]school.Teacher, 0, len(records))
	for _, rec := range records {
		teachers = append(teachers, school.TeacherFromRecord(rec))
	}
	return teachers, nil
}

func (c *Client) Students(ctx context.Context) ([]school.Student, error) {
	records, err := c.fetchTable(ctx, school.TableStudent)
	if err != nil {
		return nil, err
	}
	students := make([]school.Student, 0, len(records))
	for _, rec := range records {
		students = append(students, school.StudentFromRecord(rec))
	}
	return students, nil
}

func (c *Client) Principals(ctx context.Context) ([]school.Principal, error) {
	records, err := c.fetchTable(ctx, school.TablePrincipal)
	if err != nil {
		return nil, err
	}
	principals := make([]school.Principal, 0, len(records))
	for _, rec := range records {
		principals = append(principals, school.PrincipalFromRecord(rec))
	}
	return principals, nil
}

func (c *Client) Curriculum(ctx context.Context) ([]school.CurriculumItem, error) {
	records, err := c.fetchTable(ctx, school.TableHafalan)
	if err != nil {
		return nil, err
	}
	return school.CurriculumFromRecords(records), nil
}

func (c *Client) Billing(ctx context.Context) ([]school.BillingItem, error) {
	records, err := c.fetchTable(ctx, school.TableSPP)
	if err != nil {
		return nil, err
	}
	items := make([]school.BillingItem, 0, len(records))
	for _, rec := range records {
		items = append(items, school.BillingItemFromRecord(rec))
	}
	return items, nil
}

func (c *Client) Scores(ctx context.Context) ([]school.Score, error) {
	records, err := c.fetchTable(ctx, school.TableScore)
	if err != nil {
		return nil, err
	}
	scores := make([]school.Score, 0, len(records))
	for _, rec := range records {
		scores = append(scores, school.ScoreFromRecord(rec))
	}
	return scores, nil
}

// Records returns the raw rows of a logical table after the usual
// cached-or-live resolution, without decoding them into entities.
func (c *Client) Records(ctx context.Context, table string) ([]sheet.Record, error) {
	return c.fetchTable(ctx, table)
}

// fetchTable resolves one table to records, CSV-first where configured.
// The Score table skips the CSV path entirely: its export lags writes.
func (c *Client) fetchTable(ctx context.Context, table string) ([]sheet.Record, error) {
	seq := c.snaps.begin(table)
	fetchID := uuid.New().String()

	if table != school.TableScore {
		if csvURL := c.conf.CSVURLs[table]; csvURL != "" {
			records, err := c.fetchCSV(ctx, csvURL)
			if err == nil {
				return c.snaps.commit(table, seq, records), nil
			}
			c.log.Warn("csv fetch failed, falling back to live endpoint",
				map[string]interface{}{"table": table, "fetch_id": fetchID, "error": err.Error()})
		}
	}

	records, err := c.fetchLive(ctx, table)
	if err != nil {
		c.log.Error("live fetch failed",
			map[string]interface{}{"table": table, "fetch_id": fetchID, "error": err.Error()})
		return nil, errors.WithMessagef(school.ErrSourceUnavailable, "%s (fetch %s): %v", table, fetchID, err)
	}
	return c.snaps.commit(table, seq, records), nil
}

// fetchCSV downloads a published export and parses it. Export URLs that lose
// their sharing settings redirect to an HTML sign-in page with status 200, so
// an HTML-looking body counts as a failure.
func (c *Client) fetchCSV(ctx context.Context, csvURL string) ([]sheet.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("csv fetch: %s", resp.Status)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	text := string(body)
	if isHTML(text) {
		return nil, errors.New("received HTML instead of CSV (export not public?)")
	}
	return sheet.Parse(text), nil
}

func isHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<!DOCTYPE html") || strings.Contains(text, "<html")
}

// fetchLive asks the web app for a table's rows as JSON.
func (c *Client) fetchLive(ctx context.Context, table string) ([]sheet.Record, error) {
	liveURL := fmt.Sprintf("%s?action=getData&sheet=%s", c.conf.WebAppURL, url.QueryEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, liveURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("live fetch: %s", resp.Status)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decoding live response")
	}

	switch v := payload.(type) {
	case []interface{}:
		return recordsFromRows(v)
	case map[string]interface{}:
		if msg, ok := v["error"]; ok {
			return nil, errors.Errorf("live fetch: %v", msg)
		}
	}
	return nil, errors.New("live fetch: unexpected response shape")
}

// recordsFromRows turns the web app's JSON row objects into records,
// stringifying cell values: the sheet API serves numeric-looking cells
// (NISN, phone numbers) as numbers.
func recordsFromRows(rows []interface{}) ([]sheet.Record, error) {
	records := make([]sheet.Record, 0, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		if !ok {
			return nil, errors.New("live fetch: row is not an object")
		}
		rec := make(sheet.Record, len(obj))
		for name, val := range obj {
			rec[name] = cellString(val)
		}
		records = append(records, rec)
	}
	return records, nil
}

func cellString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}

// Writes

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) CreateScore(ctx context.Context, score school.Score) error {
	return c.post(ctx, "addScore", scorePayload(score))
}

func (c *Client) EditScore(ctx context.Context, score school.Score) error {
	return c.post(ctx, "editScore", map[string]interface{}{
		"originalTimestamp": score.Timestamp,
		"newData":           scorePayload(score),
	})
}

func (c *Client) DeleteScore(ctx context.Context, timestamp string) error {
	return c.post(ctx, "deleteScore", map[string]interface{}{"timestamp": timestamp})
}

// scorePayload renders a score with the sheet's column names. The Timestamp
// is deliberately absent: the web app assigns it on insert.
func scorePayload(s school.Score) map[string]interface{} {
	return map[string]interface{}{
		"Student ID":   s.StudentID,
		"Category":     s.Category.Label(),
		"Item Name":    s.ItemName,
		"Score":        s.Grade.Code(),
		"Date":         s.Date,
		"Notes":        s.Notes,
		"Semester":     s.Semester,
		"Teacher Name": s.TeacherName,
	}
}

// post sends one mutation and interprets the {success, message} envelope.
func (c *Client) post(ctx context.Context, action string, data interface{}) error {
	body, err := json.Marshal(map[string]interface{}{"action": action, "data": data})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.WebAppURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", postContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithMessagef(school.ErrSourceUnavailable, "%s: %v", action, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.WithMessagef(school.ErrSourceUnavailable, "%s: %s", action, resp.Status)
	}

	var result envelope
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.WithMessagef(school.ErrSourceUnavailable, "%s: decoding response: %v", action, err)
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "Terjadi kesalahan di server."
		}
		return &school.RemoteError{Message: msg}
	}
	return nil
}
