package entity

import (
	"fmt"
	"sort"
)

type TopTechnician struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AnalyticsSummary struct {
	TotalInstallations int            `json:"total_installations"`
	AvgPerDay          float64        `json:"avg_per_day"`
	AvgDurationMinutes float64        `json:"avg_duration_minutes"`
	TopTechnician      *TopTechnician `json:"top_technician,omitempty"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ProductShare struct {
	ProductName string  `json:"product_name"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type TechnicianPerformance struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Installations int     `json:"installations"`
	AvgPerDay     float64 `json:"avg_per_day"`
	AvgDuration   float64 `json:"avg_duration"`
	Ranking       int     `json:"ranking"`
}

type ProductDuration struct {
	ProductName string  `json:"product_name"`
	AvgMinutes  float64 `json:"avg_minutes"`
}

type InstallationAnalytics struct {
	Start             Date                    `json:"start_date"`
	End               Date                    `json:"end_date"`
	Summary           AnalyticsSummary        `json:"summary"`
	ByDay             []DayCount              `json:"by_day"`
	ByProduct         []ProductShare          `json:"by_product"`
	ByTechnician      []TechnicianPerformance `json:"by_technician"`
	DurationByProduct []ProductDuration       `json:"duration_by_product"`
}

type AnalyticsFilter struct {
	Start        Date
	End          Date
	TechnicianID *int64
}

func (f AnalyticsFilter) Validate() error {
	if f.Start.IsZero() || f.End.IsZero() || f.End.Before(f.Start.Time) {
		return ErrInvalidArgument
	}

	return nil
}

type techAcc struct {
	id        int64
	name      string
	count     int
	durations []int
	days      map[string]struct{}
}

type productAcc struct {
	id        int64
	name      string
	count     int
	durations []int
}

// BuildInstallationAnalytics summarizes completed installations scheduled within [start, end].
// Rows that are not completed or fall outside the period are ignored.
func BuildInstallationAnalytics(start, end Date, installations []Installation) InstallationAnalytics {
	out := InstallationAnalytics{
		Start:             start,
		End:               end,
		ByDay:             []DayCount{},
		ByProduct:         []ProductShare{},
		ByTechnician:      []TechnicianPerformance{},
		DurationByProduct: []ProductDuration{},
	}

	days := 0
	dayIdx := map[string]int{}

	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		dayIdx[d.String()] = len(out.ByDay)
		out.ByDay = append(out.ByDay, DayCount{Date: d.String()})
		days++
	}

	techs := map[int64]*techAcc{}
	products := map[int64]*productAcc{}

	var (
		total     int
		durations []int
	)

	for _, inst := range installations {
		if inst.Status != InstallationCompleted || inst.ScheduledDate == nil {
			continue
		}

		day := inst.ScheduledDate.String()

		i, ok := dayIdx[day]
		if !ok {
			continue
		}

		total++
		out.ByDay[i].Count++

		if inst.DurationMinutes != nil {
			durations = append(durations, *inst.DurationMinutes)
		}

		p, ok := products[inst.ProductID]
		if !ok {
			p = &productAcc{id: inst.ProductID, name: nameOr(inst.ProductName, fmt.Sprintf("Producto %d", inst.ProductID))}
			products[inst.ProductID] = p
		}

		p.count++

		if inst.DurationMinutes != nil && *inst.DurationMinutes > 0 {
			p.durations = append(p.durations, *inst.DurationMinutes)
		}

		if inst.TechnicianID == nil {
			continue
		}

		tid := *inst.TechnicianID

		t, ok := techs[tid]
		if !ok {
			t = &techAcc{id: tid, name: nameOr(inst.TechnicianName, fmt.Sprintf("Tecnico %d", tid)), days: map[string]struct{}{}}
			techs[tid] = t
		}

		t.count++
		t.days[day] = struct{}{}

		if inst.DurationMinutes != nil && *inst.DurationMinutes > 0 {
			t.durations = append(t.durations, *inst.DurationMinutes)
		}
	}

	out.Summary.TotalInstallations = total
	if days > 0 {
		out.Summary.AvgPerDay = roundTo(float64(total)/float64(days), 1)
	}

	out.Summary.AvgDurationMinutes = avg(durations)

	techList := make([]*techAcc, 0, len(techs))
	for _, t := range techs {
		techList = append(techList, t)
	}

	sort.Slice(techList, func(i, j int) bool {
		if techList[i].count != techList[j].count {
			return techList[i].count > techList[j].count
		}

		return techList[i].id < techList[j].id
	})

	for i, t := range techList {
		worked := len(t.days)
		if worked == 0 {
			worked = 1
		}

		out.ByTechnician = append(out.ByTechnician, TechnicianPerformance{
			ID:            t.id,
			Name:          t.name,
			Installations: t.count,
			AvgPerDay:     roundTo(float64(t.count)/float64(worked), 1),
			AvgDuration:   avg(t.durations),
			Ranking:       i + 1,
		})
	}

	if len(techList) > 0 {
		out.Summary.TopTechnician = &TopTechnician{Name: techList[0].name, Count: techList[0].count}
	}

	prodList := make([]*productAcc, 0, len(products))
	for _, p := range products {
		prodList = append(prodList, p)
	}

	sort.Slice(prodList, func(i, j int) bool {
		if prodList[i].count != prodList[j].count {
			return prodList[i].count > prodList[j].count
		}

		return prodList[i].id < prodList[j].id
	})

	for _, p := range prodList {
		out.ByProduct = append(out.ByProduct, ProductShare{
			ProductName: p.name,
			Count:       p.count,
			Percentage:  roundTo(float64(p.count)*100/float64(total), 1),
		})

		if len(p.durations) > 0 {
			out.DurationByProduct = append(out.DurationByProduct, ProductDuration{
				ProductName: p.name,
				AvgMinutes:  avg(p.durations),
			})
		}
	}

	sort.SliceStable(out.DurationByProduct, func(i, j int) bool {
		return out.DurationByProduct[i].AvgMinutes > out.DurationByProduct[j].AvgMinutes
	})

	return out
}

func avg(v []int) float64 {
	if len(v) == 0 {
		return 0
	}

	sum := 0
	for _, x := range v {
		sum += x
	}

	return roundTo(float64(sum)/float64(len(v)), 1)
}

func nameOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}

	return *v
}
