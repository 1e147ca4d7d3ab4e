package usecase

import (
	"context"

	"go-finance-assistant/internal/commons/response"
	"go-finance-assistant/internal/params"
	"go-finance-assistant/pkg/safety"

	"github.com/sirupsen/logrus"
)

type SafetyUsecase interface {
	ClassifyText(ctx context.Context, req *params.ClassifyRequest) (*params.ClassifyResponse, *response.CustomError)
}

type SafetyUsecaseImpl struct {
	classifier safety.Classifier
	logger     *logrus.Logger
}

func NewSafetyUsecase(classifier safety.Classifier, logger *logrus.Logger) SafetyUsecase {
	return &SafetyUsecaseImpl{
		classifier: classifier,
		logger:     logger,
	}
}

func (u *SafetyUsecaseImpl) ClassifyText(ctx context.Context, req *params.ClassifyRequest) (*params.ClassifyResponse, *response.CustomError) {
	label, err := u.classifier.Classify(ctx, req.Text)
	if err != nil {
		u.logger.WithError(err).Error("Failed to classify text")
		return nil, response.ExternalServiceError("failed to classify text")
	}

	if label == safety.LabelMalicious {
		u.logger.Warn("Classifier flagged text as malicious")
	}

	return &params.ClassifyResponse{
		Label:     label,
		LabelName: safety.LabelName(label),
	}, nil
}
