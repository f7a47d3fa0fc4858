package category

import "context"

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	ExistsByID(ctx context.Context, categoryID uint) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Category, error)
}
