// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"aperture/internal/cache"
	"aperture/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts and likes.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) (created bool, err error)
	Unlike(ctx context.Context, userID, postID uint) (removed bool, err error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails selects the post columns plus the computed likes_count,
// comments_count and liked fields.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return storeError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, storeError(err)
	}
	return &post, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return r.ListByAuthors(ctx, []uint{authorID}, limit, offset, currentUserID)
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if len(authorIDs) == 0 {
		return make([]*models.Post, 0), nil
	}
	posts := make([]*models.Post, 0, limit)
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, storeError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return r.CountByAuthors(ctx, []uint{authorID})
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id IN ?", authorIDs).
		Count(&count).Error; err != nil {
		return 0, storeError(err)
	}
	return count, nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Likes and comments live with their post.
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return storeError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Conflict-ignoring insert on the (user_id, post_id) unique index gives
	// set-add semantics; concurrent likes by the same user cannot
	// double-insert.
	like := models.Like{UserID: userID, PostID: postID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if res.Error != nil {
		return false, storeError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, storeError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, storeError(err)
	}
	return count > 0, nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, storeError(err)
	}
	return count, nil
}
