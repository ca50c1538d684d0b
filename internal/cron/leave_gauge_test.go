package cron

import (
	"context"
	"testing"
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/service"
	"hrms/internal/service/servicetest"
	"hrms/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestLeaveGaugeJob_Run(t *testing.T) {
	clock := servicetest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	leaves := servicetest.NewLeaveStore(clock)
	for _, status := range []core.LeaveStatus{core.LeaveStatusPending, core.LeaveStatusPending, core.LeaveStatusApproved} {
		_, err := leaves.Create(context.Background(), &model.LeaveRequest{Employee: primitive.NewObjectID(), Status: status})
		require.NoError(t, err)
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "test_leave_requests"}, []string{"status"})
	metric := &telemetry.Metric{LeaveStatusGauge: gauge}
	trace := &telemetry.Trace{}
	leaveService := service.NewLeaveService(trace, metric, zap.NewNop(), leaves, servicetest.NewEmployeeStore(clock))

	NewLeaveGaugeJob(zap.NewNop(), trace, metric, leaveService).Run()

	assert.Equal(t, 2.0, testutil.ToFloat64(gauge.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(gauge.WithLabelValues("approved")))
	assert.Equal(t, 0.0, testutil.ToFloat64(gauge.WithLabelValues("rejected")))
}
