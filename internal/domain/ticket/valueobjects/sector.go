package valueobjects

import "fmt"

// Sector is an organizational department. A ticket routes from an origin
// sector to a target sector; a technician's home sector scopes visibility.
type Sector string

const (
	SectorIT                 Sector = "IT"
	SectorSales              Sector = "Sales"
	SectorBilling            Sector = "Billing"
	SectorAccountsPayable    Sector = "Accounts Payable"
	SectorAccountsReceivable Sector = "Accounts Receivable"
	SectorHR                 Sector = "HR"
	SectorMarketing          Sector = "Marketing"
	SectorOther              Sector = "Other"
)

var validSectors = map[Sector]bool{
	SectorIT:                 true,
	SectorSales:              true,
	SectorBilling:            true,
	SectorAccountsPayable:    true,
	SectorAccountsReceivable: true,
	SectorHR:                 true,
	SectorMarketing:          true,
	SectorOther:              true,
}

func (s Sector) String() string {
	return string(s)
}

func (s Sector) IsValid() bool {
	return validSectors[s]
}

func NewSector(v string) (Sector, error) {
	s := Sector(v)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid sector: %s", v)
	}
	return s, nil
}

func AllSectors() []Sector {
	return []Sector{
		SectorIT,
		SectorSales,
		SectorBilling,
		SectorAccountsPayable,
		SectorAccountsReceivable,
		SectorHR,
		SectorMarketing,
		SectorOther,
	}
}
