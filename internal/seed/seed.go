// Package seed provides helpers to create demo data for development.
// Not intended for production use.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"aperture/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var tagPool = []string{
	"sunset", "travel", "food", "coffee", "nature", "city", "art", "music",
	"fitness", "beach", "mountains", "friends", "family", "pets", "architecture",
	"photography", "streetstyle", "minimal", "vintage", "nightlife",
}

// Seed populates the database with demo users, follows, posts, likes and comments.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("warning: could not clear all existing data, continuing anyway")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := createFollows(db, r, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}

	posts, err := createPosts(db, r, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createEngagement(db, r, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, follows, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:          gofakeit.Email(),
			Password:       string(hashed),
			Bio:            gofakeit.Sentence(10),
			ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(user).Error; err != nil {
			// Duplicate username/email from the generator; skip and move on.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createFollows(db *gorm.DB, r *rand.Rand, users []*models.User) error {
	for _, follower := range users {
		// Each user follows roughly a third of the others.
		for _, target := range users {
			if target.ID == follower.ID || r.Intn(3) != 0 {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FolloweeID: target.ID}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createPosts(db *gorm.DB, r *rand.Rand, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[r.Intn(len(users))]
		tags := make([]string, 0, 3)
		for _, idx := range r.Perm(len(tagPool))[:1+r.Intn(3)] {
			tags = append(tags, tagPool[idx])
		}

		post := &models.Post{
			UserID:   author.ID,
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			Caption:  gofakeit.Sentence(8),
			Location: gofakeit.City(),
			Tags:     tags,
		}
		// realistic created_at spread
		post.CreatedAt = time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour)

		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, r *rand.Rand, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if r.Intn(4) == 0 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					return err
				}
			}
			if r.Intn(10) == 0 {
				comment := &models.Comment{
					UserID: user.ID,
					PostID: post.ID,
					Text:   gofakeit.Sentence(6 + r.Intn(10)),
				}
				if err := db.Create(comment).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}
