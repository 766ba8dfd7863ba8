package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMapErr(t *testing.T) {
	if mapErr(nil) != nil {
		t.Error("nil should stay nil")
	}
	if err := mapErr(fmt.Errorf("scan: %w", sql.ErrNoRows)); !errors.Is(err, ErrNotFound) {
		t.Errorf("no rows = %v", err)
	}
	dup := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	err := mapErr(dup)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("unique violation = %v", err)
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		t.Error("original pq error must stay reachable")
	}
	other := &pq.Error{Code: "23503"}
	if err := mapErr(other); errors.Is(err, ErrDuplicate) {
		t.Error("foreign key violation is not a duplicate")
	}
}

type rowStub struct {
	fields string
}

func (r rowStub) Scan(dest ...any) error {
	*dest[0].(*int) = 7
	*dest[1].(*int) = 3
	*dest[2].(*string) = "W5"
	*dest[3].(*[]byte) = []byte(r.fields)
	return nil
}

func TestScanDriver(t *testing.T) {
	d, err := scanDriver(rowStub{fields: `{"mms":"10","kms":5}`})
	if err != nil {
		t.Fatal(err)
	}
	if d.ID != 7 || d.UserID != 3 || d.Fields["mms"] != "10" || d.Fields["kms"] != "5" {
		t.Errorf("d = %+v", d)
	}
	if _, err := scanDriver(rowStub{fields: `[`}); err == nil {
		t.Error("bad JSON accepted")
	}
}
