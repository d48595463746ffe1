package roster

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/okian/fairway/internal/domain/model"
	"github.com/okian/fairway/pkg/logger"
)

const readOnlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

// SheetsSource loads teams from a Google Sheets worksheet using a service
// account.
type SheetsSource struct {
	sheetName       string
	layout          Layout
	credentialsFile string
	credentialsB64  string
	logger          logger.Logger

	// endpoint and httpClient bypass Google auth; used against fakes.
	endpoint   string
	httpClient *http.Client
}

// Option applies a configuration option to the SheetsSource.
type Option func(*SheetsSource)

// WithSheetName selects the worksheet to read.
func WithSheetName(name string) Option {
	return func(s *SheetsSource) {
		if name != "" {
			s.sheetName = name
		}
	}
}

// WithLayout overrides the grid coordinates.
func WithLayout(l Layout) Option {
	return func(s *SheetsSource) {
		s.layout = l
	}
}

// WithCredentialsFile sets the service-account JSON path.
func WithCredentialsFile(path string) Option {
	return func(s *SheetsSource) {
		s.credentialsFile = path
	}
}

// WithCredentialsBase64 sets base64-encoded service-account JSON. It takes
// precedence over the credentials file.
func WithCredentialsBase64(b64 string) Option {
	return func(s *SheetsSource) {
		s.credentialsB64 = b64
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *SheetsSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEndpoint points the client at a Sheets-compatible server without
// authentication.
func WithEndpoint(endpoint string, client *http.Client) Option {
	return func(s *SheetsSource) {
		s.endpoint = endpoint
		s.httpClient = client
	}
}

// NewSheetsSource creates a roster source with configuration options.
func NewSheetsSource(opts ...Option) *SheetsSource {
	s := &SheetsSource{
		sheetName:       "2026 Standings",
		layout:          DefaultLayout(),
		credentialsFile: "credentials.json",
		logger:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadTeams reads the worksheet of spreadsheet sheetID and parses it.
func (s *SheetsSource) LoadTeams(ctx context.Context, sheetID string) ([]*model.Team, error) {
	start := time.Now()

	clientOpts, err := s.clientOptions()
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheets client: %w", ErrSheetAccess, err)
	}

	resp, err := svc.Spreadsheets.Values.Get(sheetID, quoteSheetName(s.sheetName)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSheetAccess, describeAPIError(err))
	}

	rows := stringRows(resp.Values)
	teams, err := ParseRows(rows, s.layout)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "roster loaded",
		logger.String("sheet", s.sheetName),
		logger.Int("rows", len(rows)),
		logger.Int("teams", len(teams)),
		logger.Duration("took", time.Since(start)),
	)
	return teams, nil
}

func (s *SheetsSource) clientOptions() ([]option.ClientOption, error) {
	if s.endpoint != "" {
		opts := []option.ClientOption{option.WithEndpoint(s.endpoint), option.WithoutAuthentication()}
		if s.httpClient != nil {
			opts = append(opts, option.WithHTTPClient(s.httpClient))
		}
		return opts, nil
	}

	creds, err := s.credentials()
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithAuthCredentials(creds)}, nil
}

// credentials resolves the service account from base64 JSON first, then
// from the credentials file.
func (s *SheetsSource) credentials() (*auth.Credentials, error) {
	opts := &credentials.DetectOptions{Scopes: []string{readOnlyScope}}

	switch {
	case s.credentialsB64 != "":
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s.credentialsB64))
		if err != nil {
			return nil, fmt.Errorf("%w: decode base64: %w", ErrInvalidCredentials, err)
		}
		opts.CredentialsJSON = raw
	case s.credentialsFile == "":
		return nil, fmt.Errorf("%w: no credentials file or base64 JSON configured", ErrMissingCredentials)
	default:
		if _, err := os.Stat(s.credentialsFile); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
		}
		opts.CredentialsFile = s.credentialsFile
	}

	creds, err := credentials.DetectDefault(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return creds, nil
}

// quoteSheetName builds an A1 range covering the whole worksheet.
func quoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func describeAPIError(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Code)
		}
		return fmt.Sprintf("status %d: %s", apiErr.Code, msg)
	}
	return err.Error()
}

// stringRows flattens API cell values, which are strings for formatted
// reads but may be numbers or booleans otherwise.
func stringRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			switch t := v.(type) {
			case string:
				rows[i][j] = t
			case nil:
				rows[i][j] = ""
			default:
				rows[i][j] = fmt.Sprint(t)
			}
		}
	}
	return rows
}
