package timescale

import (
	"context"
	"time"

	"github.com/ream-lab/switchdb/model"
)

// Period is an investment period within a study timeframe.
type Period struct {
	tableName struct{} `pg:"period"` // nolint: structcheck

	PeriodID         int64 `pg:",pk,notnull,use_zero"`
	StudyTimeframeID int64 `pg:",pk,notnull,use_zero"`

	Label     int `pg:",notnull,use_zero"`
	StartYear int `pg:",notnull,use_zero"`
	EndYear   int `pg:",notnull,use_zero"`
	LengthYrs int `pg:",notnull,use_zero"`
}

func (p *Period) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, p)
}

// SampledTimeseries is a representative slice of time sampled from a period.
type SampledTimeseries struct {
	tableName struct{} `pg:"sampled_timeseries"` // nolint: structcheck

	SampledTimeseriesID int64 `pg:",pk,notnull,use_zero"`
	StudyTimeframeID    int64 `pg:",pk,notnull,use_zero"`

	TimeSampleID      int64  `pg:",notnull,use_zero"`
	PeriodID          int64  `pg:",notnull,use_zero"`
	Name              string `pg:",notnull"`
	HoursPerTp        *float64
	NumTimepoints     *int
	FirstTimepointUtc time.Time `pg:",notnull"`
	ScalingToPeriod   *float64
}

func (ts *SampledTimeseries) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, ts)
}

// SampledTimepoint is one hour within a sampled timeseries.
type SampledTimepoint struct {
	tableName struct{} `pg:"sampled_timepoint"` // nolint: structcheck

	RawTimepointID   int64 `pg:",pk,notnull,use_zero"`
	StudyTimeframeID int64 `pg:",pk,notnull,use_zero"`

	SampledTimeseriesID int64     `pg:",notnull,use_zero"`
	TimeSampleID        int64     `pg:",notnull,use_zero"`
	PeriodID            int64     `pg:",notnull,use_zero"`
	TimestampUtc        time.Time `pg:",notnull"`
}

func (tp *SampledTimepoint) Persist(ctx context.Context, s model.StorageBatch) error {
	return s.PersistModel(ctx, tp)
}
