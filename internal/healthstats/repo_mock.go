package healthstats

import (
	"context"
	"sort"
	"time"
)

type MeasurementsRepoMock struct {
	measurements []WeightMeasurement
	listCalls    int
	nextID       int
}

func NewMockMeasurementsRepo() *MeasurementsRepoMock {
	return &MeasurementsRepoMock{
		nextID: 1,
	}
}

func (r *MeasurementsRepoMock) Add(_ context.Context, m *WeightMeasurement) (*WeightMeasurement, error) {
	m.ID = r.nextID
	r.nextID++
	r.measurements = append(r.measurements, *m)
	return m, nil
}

func (r *MeasurementsRepoMock) List(_ context.Context, params ListParams) ([]WeightMeasurement, error) {
	r.listCalls++
	listed := make([]WeightMeasurement, 0)
	for _, m := range r.measurements {
		if params.From != nil && m.Timestamp.Before(*params.From) {
			continue
		}
		if params.To != nil && m.Timestamp.After(*params.To) {
			continue
		}
		listed = append(listed, m)
	}
	sort.Slice(listed, func(i, j int) bool {
		return listed[i].Timestamp.Before(listed[j].Timestamp)
	})
	return listed, nil
}

func (r *MeasurementsRepoMock) Latest(_ context.Context) (*WeightMeasurement, error) {
	if len(r.measurements) == 0 {
		return nil, ErrNoData
	}
	latest := r.measurements[0]
	for _, m := range r.measurements[1:] {
		if m.Timestamp.After(latest.Timestamp) {
			latest = m
		}
	}
	return &latest, nil
}

func (r *MeasurementsRepoMock) ListCalls() int {
	return r.listCalls
}

type GoalsRepoMock struct {
	goals  []*WeightGoal
	nextID int
}

func NewMockGoalsRepo() *GoalsRepoMock {
	return &GoalsRepoMock{
		nextID: 1,
	}
}

func (r *GoalsRepoMock) SetActive(_ context.Context, goal *WeightGoal) (*WeightGoal, error) {
	for _, g := range r.goals {
		g.IsActive = false
	}
	goal.ID = r.nextID
	r.nextID++
	goal.IsActive = true
	goal.CreatedAt = time.Now()
	r.goals = append(r.goals, goal)
	return goal, nil
}

func (r *GoalsRepoMock) GetActive(_ context.Context) (*WeightGoal, error) {
	for _, g := range r.goals {
		if g.IsActive {
			return g, nil
		}
	}
	return nil, ErrNoActiveGoal
}

func (r *GoalsRepoMock) ActiveCount() int {
	count := 0
	for _, g := range r.goals {
		if g.IsActive {
			count++
		}
	}
	return count
}

func (r *GoalsRepoMock) GoalsCount() int {
	return len(r.goals)
}

type ProjectionsCacheMock struct {
	points map[time.Time]ProjectedPoint
}

func NewMockProjectionsCache() *ProjectionsCacheMock {
	return &ProjectionsCacheMock{
		points: make(map[time.Time]ProjectedPoint),
	}
}

func (r *ProjectionsCacheMock) Upsert(_ context.Context, points []ProjectedPoint) error {
	for _, p := range points {
		r.points[p.Date] = p
	}
	return nil
}

func (r *ProjectionsCacheMock) PointsCount() int {
	return len(r.points)
}
