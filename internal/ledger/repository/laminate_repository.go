package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/laminate-stock/internal/ledger/domain"
)

type GormLaminateRepository struct {
	db *gorm.DB
}

func NewGormLaminateRepository(db *gorm.DB) *GormLaminateRepository {
	return &GormLaminateRepository{db: db}
}

func (r *GormLaminateRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Laminate{})
}

func (r *GormLaminateRepository) Create(laminate *domain.Laminate) error {
	return r.db.Create(laminate).Error
}

func (r *GormLaminateRepository) FindByID(id uint) (*domain.Laminate, error) {
	var laminate domain.Laminate
	err := r.db.First(&laminate, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLaminateNotFound
		}
		return nil, err
	}
	return &laminate, nil
}

func (r *GormLaminateRepository) FindAll(limit, offset int) ([]domain.Laminate, error) {
	var laminates []domain.Laminate
	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&laminates).Error
	return laminates, err
}

func (r *GormLaminateRepository) FindLowStock(threshold int) ([]domain.Laminate, error) {
	var laminates []domain.Laminate
	err := r.db.Where("stock_quantity <= ?", threshold).Order("id").Find(&laminates).Error
	return laminates, err
}

func (r *GormLaminateRepository) Update(laminate *domain.Laminate) error {
	return r.db.Save(laminate).Error
}

func (r *GormLaminateRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&domain.Laminate{}).
		Where("id = ?", id).
		Update("stock_quantity", stock).Error
}

func (r *GormLaminateRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Laminate{}, id).Error
}

func (r *GormLaminateRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&domain.Laminate{}).Error
}

func (r *GormLaminateRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Laminate{}).Count(&count).Error
	return count, err
}
