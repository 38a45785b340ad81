// File: internal/jobs/org_sweep.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"careerhub_backend/internal/config"
	"careerhub_backend/internal/organization"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrgSweepJob periodically removes organization records whose owner no longer
// holds the organization_owner role. Role transitions are not transactional
// across tables, so a crash between the profile write and the tenant
// reconciliation can strand a record; the sweep restores the invariant.
type OrgSweepJob struct {
	orgRepo       organization.Repository
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewOrgSweepJob creates a new OrgSweepJob.
func NewOrgSweepJob(
	orgRepo organization.Repository,
	logger *zap.Logger,
	cfg *config.Config,
) *OrgSweepJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &OrgSweepJob{
		orgRepo:       orgRepo,
		logger:        logger.Named("OrgSweepJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *OrgSweepJob) SetupAndStart() error {
	jobSpec := j.cfg.OrgSweepJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Organization sweep schedule not defined (ORG_SWEEP_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule organization sweep job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Organization sweep job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *OrgSweepJob) runJob() {
	j.logger.Info("Starting organization sweep run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := j.orgRepo.DeleteOrphaned(ctx)
	if err != nil {
		j.logger.Error("Organization sweep run failed", zap.Error(err))
	} else {
		j.logger.Info("Organization sweep run completed", zap.Int64("organizations_removed", removed))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *OrgSweepJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping organization sweep scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Organization sweep scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Organization sweep scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
