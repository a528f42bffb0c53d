package maintenance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatSQL  Format = "sql"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatSQL:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// exportTables is in foreign key order so the sql dump replays cleanly.
var exportTables = []string{
	"profiles",
	"rooms",
	"projectors",
	"teaching_slots",
	"reservations",
	"notifications",
}

type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

type Snapshot struct {
	ExportedAt time.Time
	Tables     []Table
}

type Exporter struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewExporter(db *pgxpool.Pool, log *zap.Logger) *Exporter {
	return &Exporter{db: db, log: log.Named("export")}
}

// Snapshot reads every table inside one read-only repeatable read
// transaction, so rows across tables are consistent.
func (e *Exporter) Snapshot(ctx context.Context, now time.Time) (Snapshot, error) {
	tx, err := e.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	snap := Snapshot{ExportedAt: now.UTC()}
	for _, name := range exportTables {
		t, err := readTable(ctx, tx, name)
		if err != nil {
			return Snapshot{}, err
		}
		e.log.Debug("table read", zap.String("table", name), zap.Int("rows", len(t.Rows)))
		snap.Tables = append(snap.Tables, t)
	}
	return snap, nil
}

func readTable(ctx context.Context, tx pgx.Tx, name string) (Table, error) {
	rows, err := tx.Query(ctx, fmt.Sprintf("select * from %s order by 1", pgx.Identifier{name}.Sanitize()))
	if err != nil {
		return Table{}, errors.Wrapf(err, "read %s", name)
	}
	defer rows.Close()

	t := Table{Name: name}
	for _, fd := range rows.FieldDescriptions() {
		t.Columns = append(t.Columns, fd.Name)
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return Table{}, errors.Wrapf(err, "values %s", name)
		}
		for i := range values {
			values[i] = normalize(values[i])
		}
		t.Rows = append(t.Rows, values)
	}
	return t, errors.Wrapf(rows.Err(), "rows %s", name)
}

func normalize(v any) any {
	switch x := v.(type) {
	case [16]byte:
		return uuid.UUID(x).String()
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case pgtype.Time:
		if !x.Valid {
			return nil
		}
		d := time.Duration(x.Microseconds) * time.Microsecond
		return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
	}
	return v
}

type document struct {
	ExportedAt string                      `json:"exported_at"`
	Tables     map[string][]map[string]any `json:"tables"`
	Counts     map[string]int              `json:"counts"`
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	doc := document{
		ExportedAt: snap.ExportedAt.Format(time.RFC3339),
		Tables:     make(map[string][]map[string]any, len(snap.Tables)),
		Counts:     make(map[string]int, len(snap.Tables)),
	}
	for _, t := range snap.Tables {
		rows := make([]map[string]any, 0, len(t.Rows))
		for _, r := range t.Rows {
			obj := make(map[string]any, len(t.Columns))
			for i, col := range t.Columns {
				obj[col] = r[i]
			}
			rows = append(rows, obj)
		}
		doc.Tables[t.Name] = rows
		doc.Counts[t.Name] = len(rows)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func WriteSQL(w io.Writer, snap Snapshot) error {
	if _, err := fmt.Fprintf(w, "-- exported at %s\n", snap.ExportedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	for _, t := range snap.Tables {
		if len(t.Rows) == 0 {
			continue
		}
		cols := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cols[i] = pgx.Identifier{c}.Sanitize()
		}
		prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES (", pgx.Identifier{t.Name}.Sanitize(), strings.Join(cols, ", "))
		for _, r := range t.Rows {
			vals := make([]string, len(r))
			for i, v := range r {
				vals[i] = sqlLiteral(v)
			}
			if _, err := io.WriteString(w, prefix+strings.Join(vals, ", ")+");\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func sqlLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	}
	return sqlLiteral(fmt.Sprint(v))
}

func (e *Exporter) Export(ctx context.Context, w io.Writer, format Format, now time.Time) error {
	snap, err := e.Snapshot(ctx, now)
	if err != nil {
		return err
	}
	switch format {
	case FormatSQL:
		return WriteSQL(w, snap)
	default:
		return WriteJSON(w, snap)
	}
}
