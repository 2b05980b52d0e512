package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildInstallationAnalytics(t *testing.T) {
	t.Parallel()

	start := mustDate(t, "2024-05-01")
	end := mustDate(t, "2024-05-04")
	d1 := mustDate(t, "2024-05-01")
	d3 := mustDate(t, "2024-05-03")
	out := mustDate(t, "2024-05-10")

	completed := func(id, product, tech int64, day entity.Date, minutes *int) entity.Installation {
		inst := entity.Installation{
			ID:              id,
			ProductID:       product,
			ScheduledDate:   &day,
			Status:          entity.InstallationCompleted,
			DurationMinutes: minutes,
		}
		inst.ProductName = ptr("Cerradura " + map[int64]string{1: "OS566F", 2: "OS600"}[product])

		if tech != 0 {
			inst.TechnicianID = ptr(tech)
			inst.TechnicianName = ptr(map[int64]string{7: "Pedro", 8: "Carla"}[tech])
		}

		return inst
	}

	installations := []entity.Installation{
		completed(1, 1, 7, d1, ptr(60)),
		completed(2, 1, 7, d3, ptr(90)),
		completed(3, 2, 8, d3, ptr(120)),
		completed(4, 1, 0, d1, nil),
		completed(5, 2, 8, out, ptr(30)),
		{ID: 6, ProductID: 1, ScheduledDate: &d1, Status: entity.InstallationScheduled},
	}

	a := entity.BuildInstallationAnalytics(start, end, installations)

	require.Equal(t, 4, a.Summary.TotalInstallations)
	require.InDelta(t, 1.0, a.Summary.AvgPerDay, 0.001)
	require.InDelta(t, 90.0, a.Summary.AvgDurationMinutes, 0.001)
	require.Equal(t, &entity.TopTechnician{Name: "Pedro", Count: 2}, a.Summary.TopTechnician)

	require.Equal(t, []entity.DayCount{
		{Date: "2024-05-01", Count: 2},
		{Date: "2024-05-02", Count: 0},
		{Date: "2024-05-03", Count: 2},
		{Date: "2024-05-04", Count: 0},
	}, a.ByDay)

	require.Len(t, a.ByProduct, 2)
	require.Equal(t, "Cerradura OS566F", a.ByProduct[0].ProductName)
	require.Equal(t, 3, a.ByProduct[0].Count)
	require.InDelta(t, 75.0, a.ByProduct[0].Percentage, 0.001)
	require.InDelta(t, 25.0, a.ByProduct[1].Percentage, 0.001)

	require.Len(t, a.ByTechnician, 2)
	require.Equal(t, int64(7), a.ByTechnician[0].ID)
	require.Equal(t, 1, a.ByTechnician[0].Ranking)
	require.InDelta(t, 1.0, a.ByTechnician[0].AvgPerDay, 0.001)
	require.InDelta(t, 75.0, a.ByTechnician[0].AvgDuration, 0.001)
	require.Equal(t, 2, a.ByTechnician[1].Ranking)

	require.Equal(t, []entity.ProductDuration{
		{ProductName: "Cerradura OS600", AvgMinutes: 120},
		{ProductName: "Cerradura OS566F", AvgMinutes: 75},
	}, a.DurationByProduct)
}

func TestBuildInstallationAnalytics_Empty(t *testing.T) {
	t.Parallel()

	a := entity.BuildInstallationAnalytics(mustDate(t, "2024-02-01"), mustDate(t, "2024-02-29"), nil)

	require.Zero(t, a.Summary.TotalInstallations)
	require.Nil(t, a.Summary.TopTechnician)
	require.Len(t, a.ByDay, 29)
	require.NotNil(t, a.ByProduct)
	require.NotNil(t, a.ByTechnician)
}
