package politics

import (
	"math/rand"
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func peer(name string, dept models.Department, values ...string) models.AgentProfile {
	return models.AgentProfile{
		Name:       name,
		Role:       "Director",
		Department: dept,
		CoreValues: values,
	}
}

func TestSelectPairsSharedValuesWinOverRelatedDepartments(t *testing.T) {
	// Energy and Transportation are related departments, but two shared
	// values must classify the pair as coalition building first.
	peers := []models.AgentProfile{
		peer("A", models.DepartmentEnergy, "equity", "innovation"),
		peer("B", models.DepartmentTransportation, "equity", "innovation"),
	}
	rng := rand.New(rand.NewSource(1))

	pairs := selectPairs(peers, 0, 4, rng)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].purpose != models.PurposeCoalitionBuilding {
		t.Errorf("purpose = %s, want %s", pairs[0].purpose, models.PurposeCoalitionBuilding)
	}
}

func TestSelectPairsRelatedDepartments(t *testing.T) {
	tests := []struct {
		a, b    models.Department
		related bool
	}{
		{models.DepartmentEnergy, models.DepartmentTransportation, true},
		{models.DepartmentTransportation, models.DepartmentEnergy, true},
		{models.DepartmentWaste, models.DepartmentWater, true},
		{models.DepartmentHousing, models.DepartmentCitizens, true},
		{models.DepartmentEnergy, models.DepartmentWater, false},
		{models.DepartmentWaste, models.DepartmentHousing, false},
	}
	for _, tt := range tests {
		if got := departmentsRelated(tt.a, tt.b); got != tt.related {
			t.Errorf("departmentsRelated(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.related)
		}
	}
}

func TestSelectPairsRelatedDepartmentsShareInformation(t *testing.T) {
	peers := []models.AgentProfile{
		peer("A", models.DepartmentWaste, "efficiency"),
		peer("B", models.DepartmentWater, "conservation"),
	}
	rng := rand.New(rand.NewSource(1))

	pairs := selectPairs(peers, 0, 4, rng)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].purpose != models.PurposeInformationSharing {
		t.Errorf("purpose = %s, want %s", pairs[0].purpose, models.PurposeInformationSharing)
	}
}

func TestSelectPairsGeneralDiscussionProbability(t *testing.T) {
	peers := []models.AgentProfile{
		peer("A", models.DepartmentEnergy, "growth"),
		peer("B", models.DepartmentHousing, "housing"),
	}

	// Probability 1 always pairs, probability 0 never does.
	always := selectPairs(peers, 1.0, 4, rand.New(rand.NewSource(1)))
	if len(always) != 1 || always[0].purpose != models.PurposeGeneralDiscussion {
		t.Errorf("with p=1 expected one general discussion pair, got %v", always)
	}
	never := selectPairs(peers, 0.0, 4, rand.New(rand.NewSource(1)))
	if len(never) != 0 {
		t.Errorf("with p=0 expected no pairs, got %d", len(never))
	}
}

func TestSelectPairsTruncatesToCap(t *testing.T) {
	// Four peers all sharing two values yield six candidate pairs.
	peers := []models.AgentProfile{
		peer("A", models.DepartmentEnergy, "equity", "science"),
		peer("B", models.DepartmentHousing, "equity", "science"),
		peer("C", models.DepartmentWater, "equity", "science"),
		peer("D", models.DepartmentWaste, "equity", "science"),
	}
	rng := rand.New(rand.NewSource(1))

	pairs := selectPairs(peers, 0, 4, rng)
	if len(pairs) != 4 {
		t.Fatalf("expected cap of 4 pairs, got %d", len(pairs))
	}
	// Truncation keeps the earliest generated pair.
	if pairs[0].initiator.Name != "A" || pairs[0].responder.Name != "B" {
		t.Errorf("first pair = %s/%s, want A/B", pairs[0].initiator.Name, pairs[0].responder.Name)
	}
}

func TestSelectPairsDeterministicForSeed(t *testing.T) {
	peers := []models.AgentProfile{
		peer("A", models.DepartmentEnergy, "growth"),
		peer("B", models.DepartmentHousing, "housing"),
		peer("C", models.DepartmentWater, "conservation"),
	}

	first := selectPairs(peers, 0.5, 4, rand.New(rand.NewSource(7)))
	second := selectPairs(peers, 0.5, 4, rand.New(rand.NewSource(7)))
	if len(first) != len(second) {
		t.Fatalf("same seed produced %d then %d pairs", len(first), len(second))
	}
	for i := range first {
		if first[i].initiator.Name != second[i].initiator.Name ||
			first[i].responder.Name != second[i].responder.Name ||
			first[i].purpose != second[i].purpose {
			t.Errorf("pair %d differs across identical seeds", i)
		}
	}
}
