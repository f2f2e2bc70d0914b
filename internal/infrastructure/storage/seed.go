package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// SeedOptions controla qué datos por defecto se siembran.
type SeedOptions struct {
	ExampleProducts bool
}

type seedUser struct {
	id, username, password, role, fullName, email string
}

var defaultUsers = []seedUser{
	{"1", "admin", "admin123", entity.RoleAdmin, "Administrador del Sistema", "admin@inventario.com"},
	{"2", "empleado", "emp123", entity.RoleEmpleado, "Usuario Empleado", "empleado@inventario.com"},
}

// Initialize siembra usuarios, categorías, productos de ejemplo y el libro vacío,
// solo para las colecciones ausentes o vacías. Es idempotente: una segunda llamada no
// cambia nada. Si la lectura de una colección falla se omite su siembra.
func Initialize(ctx context.Context, s Store, opts SeedOptions) error {
	now := time.Now()

	users := NewUserRepository(s)
	if _, found, err := users.List(ctx); err != nil {
		log.Warn().Err(err).Msg("seed: no se pudo leer usuarios, se omite")
	} else if !found {
		list, err := buildDefaultUsers(now)
		if err != nil {
			return err
		}
		if err := users.SaveAll(ctx, list); err != nil {
			return err
		}
		log.Info().Int("total", len(list)).Msg("seed: usuarios por defecto creados")
	}

	categories := NewCategoryRepository(s)
	if list, err := categories.List(ctx); err != nil {
		log.Warn().Err(err).Msg("seed: no se pudo leer categorías, se omite")
	} else if len(list) == 0 {
		if err := categories.SaveAll(ctx, entity.DefaultCategories()); err != nil {
			return err
		}
		log.Info().Msg("seed: categorías por defecto creadas")
	}

	if opts.ExampleProducts {
		products := NewProductRepository(s)
		if list, err := products.List(ctx); err != nil {
			log.Warn().Err(err).Msg("seed: no se pudo leer productos, se omite")
		} else if len(list) == 0 {
			if err := Save(ctx, s, KeyProducts, exampleProducts(now)); err != nil {
				return err
			}
			log.Info().Msg("seed: productos de ejemplo creados")
		}
	}

	var movements []*entity.Movement
	if found, err := Load(ctx, s, KeyMovements, &movements); err != nil {
		log.Warn().Err(err).Msg("seed: no se pudo leer movimientos, se omite")
	} else if !found {
		if err := Save(ctx, s, KeyMovements, []*entity.Movement{}); err != nil {
			return err
		}
	}
	return nil
}

func buildDefaultUsers(now time.Time) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed: hash de %s: %w", u.username, err)
		}
		out = append(out, &entity.User{
			ID:           u.id,
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			FullName:     u.fullName,
			Email:        u.email,
			Active:       true,
			CreatedAt:    now,
		})
	}
	return out, nil
}

func exampleProducts(now time.Time) []*entity.Product {
	mk := func(code, name, desc, category string, price int64, stock, minStock int) *entity.Product {
		return &entity.Product{
			ID:          uuid.New().String(),
			Code:        code,
			Name:        name,
			Description: desc,
			Category:    category,
			Price:       decimal.NewFromInt(price),
			Stock:       stock,
			MinStock:    minStock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []*entity.Product{
		mk("PROD-001", `Laptop HP 15"`, "Laptop HP con procesador Intel Core i5, 8GB RAM, 256GB SSD", "Electrónicos", 2500000, 15, 5),
		mk("PROD-002", "Mouse Inalámbrico", "Mouse inalámbrico ergonómico", "Electrónicos", 45000, 50, 10),
		mk("PROD-003", "Teclado Mecánico", "Teclado mecánico RGB para gaming", "Electrónicos", 180000, 8, 5),
		mk("PROD-004", "Resma Papel A4", "Resma de 500 hojas papel bond A4", "Oficina", 12000, 100, 20),
		mk("PROD-005", "Café Colombiano 500g", "Café colombiano premium en grano", "Alimentos", 25000, 3, 10),
	}
}
