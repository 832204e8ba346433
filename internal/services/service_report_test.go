package services

import (
	"context"
	"testing"

	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeLedger mirrors the owner-scoped delete: only an id+owner pair that
// matches a stored report removes anything.
type fakeLedger struct {
	owners map[bson.ObjectID]bson.ObjectID // report id -> owner
}

func (f *fakeLedger) DeleteOwnReport(_ context.Context, reportID, volunteerID bson.ObjectID) (int64, error) {
	if f.owners[reportID] == volunteerID {
		delete(f.owners, reportID)
		return 1, nil
	}
	return 0, nil
}

func TestDeleteReport_OwnReport(t *testing.T) {
	owner := bson.NewObjectID()
	reportID := bson.NewObjectID()
	store := &fakeLedger{owners: map[bson.ObjectID]bson.ObjectID{reportID: owner}}

	err := DeleteReport(context.Background(), store, owner, reportID)

	assert.NoError(t, err)
	assert.Empty(t, store.owners)
}

func TestDeleteReport_ForeignReportReadsAsNotFound(t *testing.T) {
	owner := bson.NewObjectID()
	reportID := bson.NewObjectID()
	store := &fakeLedger{owners: map[bson.ObjectID]bson.ObjectID{reportID: owner}}

	err := DeleteReport(context.Background(), store, bson.NewObjectID(), reportID)

	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
	assert.Len(t, store.owners, 1)
}

func TestDeleteReport_UnknownID(t *testing.T) {
	store := &fakeLedger{owners: map[bson.ObjectID]bson.ObjectID{}}

	err := DeleteReport(context.Background(), store, bson.NewObjectID(), bson.NewObjectID())
	assert.Equal(t, apperr.NotFound, kindOf(t, err))
}

func TestSumHours(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  int
	}{
		{"no reports", nil, 0},
		{"single report", []int{4}, 4},
		{"totalHours equals the sum over the ledger", []int{3, 5, 1, 8}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := make([]models.ActivityReport, 0, len(tt.hours))
			for _, h := range tt.hours {
				reports = append(reports, models.ActivityReport{Hours: h})
			}
			assert.Equal(t, tt.want, SumHours(reports))
		})
	}
}
