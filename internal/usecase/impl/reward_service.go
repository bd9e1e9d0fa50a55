package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"companion/config"
	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	"companion/internal/domain/gamification"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/errors"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type rewardService struct {
	txManager    repository.TransactionManager
	bookingRepo  repository.BookingRepository
	levels       *gamification.LevelTable
	notifier     usecase.NotificationUsecase
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	completionXP int64
	sweepGrace   time.Duration
	sweepBatch   int
	now          func() time.Time
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	Levels      *gamification.LevelTable
	Notifier    usecase.NotificationUsecase
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRewardService creates the booking completion reward handler.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		txManager:    params.TxManager,
		bookingRepo:  params.BookingRepo,
		levels:       params.Levels,
		notifier:     params.Notifier,
		metrics:      params.Metrics,
		logger:       params.Logger,
		completionXP: params.Config.Gamification.BookingCompletionXP,
		sweepGrace:   params.Config.Gamification.RewardSweepGrace,
		sweepBatch:   params.Config.Gamification.RewardSweepBatch,
		now:          time.Now,
	}
}

func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// bookingReward is what the transaction decided, kept for the post-commit side effects.
type bookingReward struct {
	booking   *entity.Booking
	change    gamification.LevelChange
	completed []entity.Mission
}

// HandleBookingStatusChanged rewards the player once per completed booking.
// Returned errors are meant to trigger a redelivery.
func (srv *rewardService) HandleBookingStatusChanged(ctx context.Context, event *service.BookingStatusChanged) error {
	if !event.IsCompletion() {
		return nil
	}

	_, err := srv.reward(ctx, event.BookingID, event.RequestID)

	return err
}

// RewardPending catches up on completed bookings whose event was lost or whose
// handler failed without a redelivery. Bookings completed within the grace
// period are left to the event path.
func (srv *rewardService) RewardPending(ctx context.Context) (*usecase.RewardSweepReport, error) {
	ids, err := srv.bookingRepo.FindUnrewardedCompleted(ctx, srv.now().Add(-srv.sweepGrace), srv.sweepBatch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unrewarded bookings")
	}

	report := &usecase.RewardSweepReport{Found: len(ids)}
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)

			break
		}

		granted, err := srv.reward(ctx, id, "")
		if err != nil {
			report.Failed++
			errs = append(errs, errors.Wrapf(err, "booking %s", id))

			continue
		}
		if granted {
			report.Rewarded++
		}
	}
	if len(errs) > 0 {
		return report, errors.WithMessage(errors.Join(errs...), "reward sweep incomplete")
	}

	return report, nil
}

// reward runs the grant transaction and its post-commit side effects. It
// reports whether this call granted the reward.
func (srv *rewardService) reward(ctx context.Context, bookingID uuid.UUID, requestID string) (bool, error) {
	logger := srv.log(ctx).With(slog.Any("bookingID", bookingID), slog.String("requestID", requestID))

	var reward *bookingReward
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		reward, err = srv.grant(ctx, repoFactory, bookingID)

		return err
	})
	if err != nil {
		logger.Error("Booking reward failed", slog.Any("error", err))

		return false, err
	}
	if reward == nil {
		logger.Info("Booking already rewarded")

		return false, nil
	}

	srv.metrics.RewardGranted(srv.completionXP, reward.change.LeveledUp())
	logger.Info("Booking reward granted",
		slog.Any("playerID", reward.booking.PlayerID),
		slog.Int64("xp", srv.completionXP),
		slog.Int("level", reward.change.After),
		slog.Int("missionsCompleted", len(reward.completed)),
	)

	srv.notifyReward(ctx, reward)

	return true, nil
}

// grant applies every reward write inside the caller's transaction. A nil
// reward means another delivery already handled the booking.
func (srv *rewardService) grant(ctx context.Context, repoFactory repository.RepositoryFactory, bookingID uuid.UUID) (*bookingReward, error) {
	bookingRepo := repoFactory.NewBookingRepository()
	userRepo := repoFactory.NewUserRepository()
	now := srv.now()

	booking, err := bookingRepo.FindByID(ctx, bookingID)
	if errors.Is(err, repository.ErrBookingNotFound) {
		srv.log(ctx).Warn("Completed booking not found, dropping event", slog.Any("bookingID", bookingID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booking")
	}

	marked, err := bookingRepo.MarkRewarded(ctx, booking.ID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark booking rewarded")
	}
	if !marked {
		return nil, nil
	}

	previous, err := bookingRepo.CountRewardedBetween(ctx, booking.PlayerID, booking.PNJID, booking.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count previous meetings")
	}
	firstMeeting := previous == 0

	player, err := userRepo.FindByIDForUpdate(ctx, booking.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock player %s", booking.PlayerID)
	}

	player.Stats.CompletedBookings++
	player.Stats.TotalSpent += booking.TotalPrice
	if firstMeeting {
		player.Stats.UniquePNJMet++
	}

	change, err := srv.levels.AwardXP(player, srv.completionXP)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	activity := gamification.BookingActivity{
		Amount:        booking.TotalPrice,
		DurationHours: booking.DurationHours,
		FirstWithPNJ:  firstMeeting,
	}
	completed := gamification.ApplyProgress(&player.Missions, activity.Contributions(), now)

	if err := userRepo.Update(ctx, player); err != nil {
		return nil, errors.Wrap(err, "failed to save player rewards")
	}

	if err := repoFactory.NewPNJProfileRepository().IncrementCompletedBookings(ctx, booking.PNJProfileID); err != nil {
		return nil, errors.Wrap(err, "failed to count companion booking")
	}

	return &bookingReward{booking: booking, change: change, completed: completed}, nil
}

func (srv *rewardService) notifyReward(ctx context.Context, reward *bookingReward) {
	booking := reward.booking
	data := map[string]string{"booking_id": booking.ID.String()}

	inputs := []*usecase.NotifyInput{
		{
			UserID: booking.PlayerID,
			Kind:   entity.NotificationBookingCompleted,
			Title:  "Booking completed",
			Body:   "You earned " + strconv.FormatInt(srv.completionXP, 10) + " XP for your " + booking.Activity + " booking",
			Data:   data,
		},
		{
			UserID: booking.PNJID,
			Kind:   entity.NotificationBookingCompleted,
			Title:  "Booking completed",
			Body:   "Your " + booking.Activity + " booking is complete",
			Data:   data,
		},
	}
	if reward.change.LeveledUp() {
		inputs = append(inputs, levelUpNotification(booking.PlayerID, reward.change.After))
	}
	for _, mission := range reward.completed {
		inputs = append(inputs, &usecase.NotifyInput{
			UserID: booking.PlayerID,
			Kind:   entity.NotificationMissionCompleted,
			Title:  "Mission completed",
			Body:   mission.Title + " is ready to claim",
			Data:   map[string]string{"mission_id": mission.ID},
		})
	}

	for _, input := range inputs {
		if _, err := srv.notifier.Notify(ctx, input); err != nil {
			srv.log(ctx).Warn("Failed to send reward notification",
				slog.Any("userID", input.UserID),
				slog.String("kind", string(input.Kind)),
				slog.Any("error", err),
			)
		}
	}
}
