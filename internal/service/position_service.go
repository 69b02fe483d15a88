package service

import (
	"devquiz_backend/internal/model"
	"devquiz_backend/internal/repository"
	"devquiz_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type PositionService struct {
	Repo *repository.PositionRepository
}

func NewPositionService(repo *repository.PositionRepository) *PositionService {
	return &PositionService{Repo: repo}
}

type PositionReq struct {
	Name string `json:"name" binding:"required"`
}

func (s *PositionService) Create(req PositionReq) (*model.Position, error) {
	position := &model.Position{Name: req.Name}
	if err := s.Repo.Create(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *PositionService) GetByID(id uint) (*model.Position, error) {
	position, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPositionNotFound
		}
		return nil, err
	}
	return position, nil
}

func (s *PositionService) List(page, limit int) ([]model.Position, int64, error) {
	return s.Repo.List(page, limit)
}

func (s *PositionService) Update(id uint, req PositionReq) (*model.Position, error) {
	position, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	position.Name = req.Name
	if err := s.Repo.Update(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *PositionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
