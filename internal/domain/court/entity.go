package court

import (
	"math"

	"courtbook/internal/domain/booking"
	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice = errs.New("court price cannot be negative")
	ErrEmptyName     = errs.New("court name cannot be empty")
	ErrInvalidType   = errs.New("invalid court type")
	ErrNotPayable    = errs.New("court has no online-payable price")
)

type Type string

const (
	TypeIndoor  Type = "indoor"
	TypeOutdoor Type = "outdoor"
)

func (t Type) IsValid() bool {
	return t == TypeIndoor || t == TypeOutdoor
}

type Court struct {
	id                uuid.UUID
	clubID            uuid.UUID
	name              string
	kind              Type
	ground            *string
	height            *int32 // ceiling height in cm, indoor courts only
	lights            *bool  // floodlights, outdoor courts only
	priceCentsPerHour *int64
}

// NewCourt builds a court owned by clubID. Type-dependent attributes are
// normalized: height applies only to indoor courts, lights only to
// outdoor ones; inapplicable values are discarded.
func NewCourt(id, clubID uuid.UUID, name string, kind Type, ground *string, height *int32, lights *bool, priceCentsPerHour *int64) (*Court, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	if priceCentsPerHour != nil && *priceCentsPerHour < 0 {
		return nil, ErrNegativePrice
	}
	if kind != TypeIndoor {
		height = nil
	}
	if kind != TypeOutdoor {
		lights = nil
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Court{
		id:                id,
		clubID:            clubID,
		name:              name,
		kind:              kind,
		ground:            ground,
		height:            height,
		lights:            lights,
		priceCentsPerHour: priceCentsPerHour,
	}, nil
}

// PriceFor computes hourly rate × slot duration in cents. Courts without
// a positive price cannot be paid online.
func (c *Court) PriceFor(slot booking.Interval) (int64, error) {
	if c.priceCentsPerHour == nil || *c.priceCentsPerHour <= 0 {
		return 0, ErrNotPayable
	}
	hours := slot.Duration().Hours()
	return int64(math.Round(hours * float64(*c.priceCentsPerHour))), nil
}

func (c *Court) OwnedBy(subjectID uuid.UUID) bool {
	return c.clubID == subjectID
}

func (c *Court) ID() uuid.UUID             { return c.id }
func (c *Court) ClubID() uuid.UUID         { return c.clubID }
func (c *Court) Name() string              { return c.name }
func (c *Court) Kind() Type                { return c.kind }
func (c *Court) Ground() *string           { return c.ground }
func (c *Court) Height() *int32            { return c.height }
func (c *Court) Lights() *bool             { return c.lights }
func (c *Court) PriceCentsPerHour() *int64 { return c.priceCentsPerHour }
