package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/ports"
)

func TestBuildFilterEmpty(t *testing.T) {
	clause, args := buildFilter(ports.CollectionFilter{})
	if clause != "" {
		t.Errorf("clause = %q, want empty", clause)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildFilterAllFields(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	clause, args := buildFilter(ports.CollectionFilter{
		Search:    "osu",
		Status:    domain.StatusPending,
		DriverID:  4,
		StartDate: &start,
		EndDate:   &end,
	})

	if len(args) != 5 {
		t.Fatalf("args = %v, want 5 values", args)
	}
	if args[0] != "%osu%" {
		t.Errorf("search arg = %v, want %%osu%%", args[0])
	}

	for _, frag := range []string{
		"c.location_name ILIKE $1",
		"c.address ILIKE $1",
		"c.status = $2",
		"c.driver_id = $3",
		"c.scheduled_time >= $4",
		"c.scheduled_time <= $5",
	} {
		if !strings.Contains(clause, frag) {
			t.Errorf("clause %q missing %q", clause, frag)
		}
	}
	if !strings.HasPrefix(clause, " WHERE ") {
		t.Errorf("clause %q should start with WHERE", clause)
	}
}

func TestBuildFilterStatusOnly(t *testing.T) {
	clause, args := buildFilter(ports.CollectionFilter{Status: domain.StatusCompleted})
	if clause != " WHERE c.status = $1" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 1 || args[0] != domain.StatusCompleted {
		t.Errorf("args = %v", args)
	}
}
