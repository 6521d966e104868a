// Package pipeline drives the avatar sync: for every order position whose
// answers name a GitHub user, it resolves the avatar through three durable
// cache tiers (username -> avatar URL, avatar URL -> bytes, content hash ->
// uploaded file id) and patches the position's answers with the upload
// reference.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nixcon/pretix-github-badge-import/internal/cache"
	"github.com/nixcon/pretix-github-badge-import/internal/domain"
	"github.com/nixcon/pretix-github-badge-import/internal/observability"
)

//go:generate mockgen -source pipeline.go -destination mocks_test.go -package pipeline

// Identity resolves GitHub users to avatar bytes.
type Identity interface {
	AvatarURL(ctx context.Context, username string) (string, error)
	DownloadAvatar(ctx context.Context, url string) ([]byte, error)
}

// Registration is the pretix surface the pipeline mutates through.
type Registration interface {
	PatchPosition(ctx context.Context, positionID int64, pos domain.Position) error
	UploadMedia(ctx context.Context, data []byte, contentType, contentDisposition string) (string, error)
}

// OrderIterator yields orders lazily in listing order.
type OrderIterator interface {
	Next(ctx context.Context) (domain.Order, bool, error)
}

// Cache tier labels used in metrics.
const (
	TierAvatarURL   = "avatar_url"
	TierAvatarBytes = "avatar_bytes"
	TierUploadID    = "upload_id"
)

const (
	uploadContentType        = "image/png"
	uploadContentDisposition = `attachment; filename="avatar.png"`
)

type Config struct {
	// UserQuestion is the custom question id whose answer names the
	// GitHub user.
	UserQuestion int64
	// AvatarQuestion is the custom question id that receives the uploaded
	// avatar reference.
	AvatarQuestion int64
	// SkipOnLookupError makes an avatar-URL resolution failure a logged
	// skip instead of a fatal error. Download, upload and patch failures
	// always abort the run.
	SkipOnLookupError bool
}

type Pipeline struct {
	identity     Identity
	registration Registration
	avatarURLs   *cache.Cache[string]
	avatarBytes  *cache.Cache[[]byte]
	uploadIDs    *cache.Cache[string]
	logger       *zap.Logger
	metrics      observability.Metrics
	cfg          Config
}

func New(
	identity Identity,
	registration Registration,
	avatarURLs *cache.Cache[string],
	avatarBytes *cache.Cache[[]byte],
	uploadIDs *cache.Cache[string],
	logger *zap.Logger,
	metrics observability.Metrics,
	cfg Config,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &Pipeline{
		identity:     identity,
		registration: registration,
		avatarURLs:   avatarURLs,
		avatarBytes:  avatarBytes,
		uploadIDs:    uploadIDs,
		logger:       logger,
		metrics:      metrics,
		cfg:          cfg,
	}
}

// RunStats summarizes one pipeline run.
type RunStats struct {
	Orders    int
	Positions int
	Processed int
	Patched   int
	Skipped   int
}

// NormalizeUsername trims whitespace and strips a single leading "@" sigil,
// so "@octocat" and "octocat" name the same user.
func NormalizeUsername(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}

// Run walks orders -> positions -> answers and syncs every answer matching
// the configured user question. Processing is strictly sequential in
// iteration order.
func (p *Pipeline) Run(ctx context.Context, orders OrderIterator) (RunStats, error) {
	var st RunStats

	for {
		order, ok, err := orders.Next(ctx)
		if err != nil {
			return st, err
		}
		if !ok {
			return st, nil
		}
		st.Orders++

		for _, pos := range order.Positions {
			st.Positions++
			for _, ans := range pos.Answers {
				if ans.Question != p.cfg.UserQuestion {
					continue
				}
				st.Processed++

				patched, err := p.processAnswer(ctx, order, pos, ans)
				if err != nil {
					return st, err
				}
				if patched {
					st.Patched++
				} else {
					st.Skipped++
					p.metrics.IncSkipped()
				}
			}
		}
	}
}

func (p *Pipeline) processAnswer(ctx context.Context, order domain.Order, pos domain.Position, ans domain.Answer) (bool, error) {
	username := NormalizeUsername(ans.Answer)

	avatarURL, err := p.resolveAvatarURL(ctx, order, ans, username)
	if err != nil {
		return false, err
	}
	if avatarURL == "" {
		p.logger.Info("no avatar url",
			zap.String("order", order.Code),
			zap.String("username", username),
		)
		return false, nil
	}

	data, err := p.resolveAvatarBytes(ctx, avatarURL)
	if err != nil {
		return false, err
	}

	uploadID, err := p.resolveUploadID(ctx, data)
	if err != nil {
		return false, err
	}

	patched := pos.Clone()
	patched.Answers = reconcileAnswers(pos.Answers, p.cfg.AvatarQuestion, uploadID)

	if err := p.registration.PatchPosition(ctx, pos.ID, patched); err != nil {
		return false, err
	}
	p.metrics.IncPatch()
	p.logger.Info("position patched",
		zap.String("order", order.Code),
		zap.Int64("position", pos.ID),
		zap.String("username", username),
		zap.String("upload_id", uploadID),
	)
	return true, nil
}

// resolveAvatarURL returns "" when the URL cannot be resolved and the
// configured policy says to skip.
func (p *Pipeline) resolveAvatarURL(ctx context.Context, order domain.Order, ans domain.Answer, username string) (string, error) {
	if url, ok := p.cacheGetString(p.avatarURLs, TierAvatarURL, username); ok {
		return url, nil
	}

	url, err := p.identity.AvatarURL(ctx, username)
	if err != nil {
		p.metrics.IncLookupFailure()
		p.logger.Warn("failed to resolve avatar",
			zap.String("order", order.Code),
			zap.String("email", order.Email),
			zap.String("answer", ans.Answer),
			zap.Error(err),
		)
		if p.cfg.SkipOnLookupError {
			return "", nil
		}
		return "", err
	}

	if err := p.avatarURLs.Set(username, url); err != nil {
		return "", fmt.Errorf("cache avatar url for %q: %w", username, err)
	}
	return url, nil
}

func (p *Pipeline) resolveAvatarBytes(ctx context.Context, avatarURL string) ([]byte, error) {
	if data, ok, err := p.avatarBytes.Get(avatarURL); err == nil && ok {
		p.metrics.IncCacheHit(TierAvatarBytes)
		return data, nil
	} else if err != nil {
		p.logger.Warn("avatar cache read failed", zap.String("url", avatarURL), zap.Error(err))
	}
	p.metrics.IncCacheMiss(TierAvatarBytes)

	data, err := p.identity.DownloadAvatar(ctx, avatarURL)
	if err != nil {
		return nil, err
	}
	if err := p.avatarBytes.Set(avatarURL, data); err != nil {
		return nil, fmt.Errorf("cache avatar bytes for %q: %w", avatarURL, err)
	}
	return data, nil
}

func (p *Pipeline) resolveUploadID(ctx context.Context, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if id, ok := p.cacheGetString(p.uploadIDs, TierUploadID, hash); ok {
		return id, nil
	}

	id, err := p.registration.UploadMedia(ctx, data, uploadContentType, uploadContentDisposition)
	if err != nil {
		return "", err
	}
	p.metrics.IncUpload()

	if err := p.uploadIDs.Set(hash, id); err != nil {
		return "", fmt.Errorf("cache upload id for %q: %w", hash, err)
	}
	return id, nil
}

// cacheGetString treats cache read errors as misses; a broken cache entry is
// worth a warning, not a dead run.
func (p *Pipeline) cacheGetString(c *cache.Cache[string], tier, key string) (string, bool) {
	v, ok, err := c.Get(key)
	if err != nil {
		p.logger.Warn("cache read failed", zap.String("tier", tier), zap.String("key", key), zap.Error(err))
		p.metrics.IncCacheMiss(tier)
		return "", false
	}
	if ok {
		p.metrics.IncCacheHit(tier)
		return v, true
	}
	p.metrics.IncCacheMiss(tier)
	return "", false
}

// reconcileAnswers deep-copies answers and sets the avatar question to the
// upload reference: the first existing answer for the question is
// overwritten, otherwise a new one is appended.
func reconcileAnswers(answers []domain.Answer, question int64, uploadID string) []domain.Answer {
	out := domain.CloneAnswers(answers)
	for i := range out {
		if out[i].Question == question {
			out[i].Answer = uploadID
			return out
		}
	}
	return append(out, domain.Answer{Question: question, Answer: uploadID})
}
