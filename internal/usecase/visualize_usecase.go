package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/pkg/chart"

	"github.com/sirupsen/logrus"
)

type VisualizeUsecase interface {
	VisualizeTransactions(ctx context.Context, period, wallet string) (*params.VisualizeResponse, *response.CustomError)
}

type VisualizeUsecaseImpl struct {
	analysis AnalysisUsecase
	uploader chart.Uploader
	logger   *logrus.Logger
}

func NewVisualizeUsecase(analysis AnalysisUsecase, uploader chart.Uploader, logger *logrus.Logger) VisualizeUsecase {
	return &VisualizeUsecaseImpl{
		analysis: analysis,
		uploader: uploader,
		logger:   logger,
	}
}

func (u *VisualizeUsecaseImpl) VisualizeTransactions(ctx context.Context, period, wallet string) (*params.VisualizeResponse, *response.CustomError) {
	points, custErr := u.analysis.TransactionsRange(ctx, period, wallet)
	if custErr != nil {
		return nil, custErr
	}

	if period == "" {
		period = "month"
	}
	title := fmt.Sprintf("Transactions Over the Last %s", capitalize(period))
	if wallet != "" {
		title += fmt.Sprintf(" for Wallet: %s", wallet)
	}

	chartPoints := make([]chart.Point, len(points))
	for i, p := range points {
		chartPoints[i] = chart.Point{Time: p.Time, Amount: p.Amount}
	}

	png, err := chart.RenderLine(chartPoints, title)
	if err != nil {
		u.logger.WithError(err).Error("Failed to render transactions chart")
		return nil, response.GeneralError("failed to render chart")
	}

	objectName := fmt.Sprintf("figures/transactions_%s_%s.png",
		strings.ToLower(period), time.Now().UTC().Format("20060102_150405"))

	url, err := u.uploader.Upload(ctx, objectName, png)
	if err != nil {
		u.logger.WithError(err).WithField("object", objectName).Error("Failed to upload chart")
		return nil, response.ExternalServiceError("failed to upload chart")
	}

	u.logger.WithFields(logrus.Fields{
		"object": objectName,
		"points": len(points),
	}).Info("Transactions chart uploaded")

	return &params.VisualizeResponse{FigURL: url}, nil
}

func capitalize(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
