package interpreter

import (
	"context"

	"github.com/dianestephani/laango-backend/internal/api/request"
	"github.com/dianestephani/laango-backend/internal/constant"
	"github.com/dianestephani/laango-backend/internal/domain"

	"github.com/pkg/errors"
)

func (is *interpreterService) Create(ctx context.Context, req request.CreateInterpreterRequest) (domain.Interpreter, error) {
	langs, err := domain.ParseLanguages(req.Languages)
	if err != nil {
		return domain.Interpreter{}, errors.Wrap(constant.ValidationErr, err.Error())
	}

	return is.interpreterRepository.Create(ctx, domain.Interpreter{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		PhoneNumber:   req.PhoneNumber,
		EmailAddress:  req.EmailAddress,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Certified:     req.Certified,
		Languages:     langs,
	})
}

func (is *interpreterService) Update(ctx context.Context, id int64, req request.UpdateInterpreterRequest) (domain.Interpreter, error) {
	existing, err := is.interpreterRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Interpreter{}, err
	}

	langs, err := domain.ParseLanguages(req.Languages)
	if err != nil {
		return domain.Interpreter{}, errors.Wrap(constant.ValidationErr, err.Error())
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.PhoneNumber = req.PhoneNumber
	existing.EmailAddress = req.EmailAddress
	existing.StreetAddress = req.StreetAddress
	existing.City = req.City
	existing.State = req.State
	existing.ZipCode = req.ZipCode
	existing.Certified = req.Certified
	existing.Languages = langs

	return is.interpreterRepository.Update(ctx, existing)
}

func (is *interpreterService) GetByID(ctx context.Context, id int64) (domain.Interpreter, error) {
	return is.interpreterRepository.GetByID(ctx, id)
}

func (is *interpreterService) List(ctx context.Context, limit, offset int) ([]domain.Interpreter, int64, error) {
	return is.interpreterRepository.List(ctx, limit, offset)
}
