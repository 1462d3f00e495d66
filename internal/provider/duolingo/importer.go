package duolingo

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"talent-services/internal/domain/resource"
	"talent-services/internal/infra"
	"talent-services/internal/pkg/errs"
	"talent-services/internal/usecase/shared"
)

// Vendor CSV export column headers, matched case-insensitively.
const (
	colCouponCode     = "coupon code"
	colExpirationDate = "expiration date"
	colDateSent       = "date sent"
	colCouponStatus   = "coupon status"
)

var requiredColumns = []string{colCouponCode, colExpirationDate, colDateSent, colCouponStatus}

// The vendor has exported both layouts at different times.
var dateLayouts = []string{"2006/01/02 15:04:05", "2006/01/02 15:04"}

// CouponImporter loads Duolingo coupon inventory from the vendor's CSV
// export. Any malformed row rejects the entire file; the caller's
// transaction guarantees all-or-nothing.
type CouponImporter struct {
	clock func() time.Time
}

func NewCouponImporter() *CouponImporter {
	return &CouponImporter{clock: func() time.Time { return time.Now().UTC() }}
}

func (i *CouponImporter) ImportFile(ctx context.Context, store shared.ResourceRepository, file io.Reader, code resource.ServiceCode) error {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "CSV header is missing"), errs.ErrImportFailed)
	}

	columnIndex := mapColumnsToIndex(headers)
	for _, column := range requiredColumns {
		if _, ok := columnIndex[column]; !ok {
			return errs.Mark(errs.Newf("missing required column: %s", column), errs.ErrImportFailed)
		}
	}

	now := i.clock()
	seen := make(map[string]struct{})
	var units []*resource.Unit

	for {
		line, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return errs.Mark(errs.Wrap(readErr, "unparseable CSV row"), errs.ErrImportFailed)
		}
		if len(line) < len(headers) {
			return errs.Mark(errs.Newf("row has %d columns, expected %d", len(line), len(headers)), errs.ErrImportFailed)
		}

		unit, rowErr := i.parseRow(line, columnIndex, code, now)
		if rowErr != nil {
			return errs.Mark(rowErr, errs.ErrImportFailed)
		}

		if _, dup := seen[unit.ResourceCode()]; dup {
			return errs.Mark(errs.Newf("duplicate coupon code in file: %s", unit.ResourceCode()), errs.ErrImportFailed)
		}
		seen[unit.ResourceCode()] = struct{}{}
		units = append(units, unit)
	}

	if err := store.InsertBatch(ctx, units); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(errs.Wrap(err, "coupon code already imported"), errs.ErrImportFailed)
		}
		return errs.Wrap(err, "failed to store imported coupons")
	}
	return nil
}

func (i *CouponImporter) parseRow(line []string, columnIndex map[string]int, target resource.ServiceCode, now time.Time) (*resource.Unit, error) {
	couponCode := strings.TrimSpace(line[columnIndex[colCouponCode]])
	if couponCode == "" {
		return nil, errs.New("missing coupon code")
	}

	expiresAt, err := parseVendorDate(line[columnIndex[colExpirationDate]])
	if err != nil {
		return nil, err
	}
	sentAt, err := parseVendorDate(line[columnIndex[colDateSent]])
	if err != nil {
		return nil, err
	}

	status, err := mapVendorStatus(line[columnIndex[colCouponStatus]])
	if err != nil {
		return nil, err
	}

	return resource.NewUnit(serviceCodeFor(couponCode, target), couponCode, status, sentAt, expiresAt, now)
}

// serviceCodeFor infers the test type from the vendor's coupon code prefix,
// falling back to the import target when the prefix is unrecognized.
func serviceCodeFor(couponCode string, target resource.ServiceCode) resource.ServiceCode {
	switch {
	case strings.HasPrefix(couponCode, "ACCNONPROC"), strings.HasPrefix(couponCode, "NONP"):
		return resource.CodeDuolingoTestNonProctored
	case strings.HasPrefix(couponCode, "ACC"), strings.HasPrefix(couponCode, "PROC"):
		return resource.CodeDuolingoTestProctored
	default:
		return target
	}
}

func mapVendorStatus(raw string) (resource.Status, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "AVAILABLE":
		return resource.StatusAvailable, nil
	case "ASSIGNED": // allocated but not sent
		return resource.StatusReserved, nil
	case "SENT":
		return resource.StatusSent, nil
	case "REDEEMED":
		return resource.StatusRedeemed, nil
	case "EXPIRED":
		return resource.StatusExpired, nil
	default:
		return "", errs.Newf("unknown coupon status: %q", raw)
	}
}

func parseVendorDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errs.Newf("invalid date format: %q", raw)
}

func mapColumnsToIndex(headers []string) map[string]int {
	columnIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		// Normalize header names: lowercase, strip whitespace and BOM
		normalized := strings.TrimSpace(strings.ToLower(strings.ReplaceAll(h, "\uFEFF", "")))
		columnIndex[normalized] = i
	}
	return columnIndex
}
