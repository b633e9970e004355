package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"scanner-srv/internal/campaign/repository"
	"scanner-srv/internal/model"
	reportRepo "scanner-srv/internal/report/repository"
	"scanner-srv/internal/scan"
	"scanner-srv/internal/scanlog"
	"scanner-srv/pkg/facebook"
	"scanner-srv/pkg/gemini"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/redis"
	"scanner-srv/pkg/website"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignRepo struct {
	mu       sync.Mutex
	due      []model.Campaign
	byID     map[string]model.Campaign
	advanced map[string]time.Time
}

func newFakeCampaignRepo(campaigns ...model.Campaign) *fakeCampaignRepo {
	r := &fakeCampaignRepo{
		byID:     map[string]model.Campaign{},
		advanced: map[string]time.Time{},
	}
	for _, c := range campaigns {
		r.due = append(r.due, c)
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCampaignRepo) ListDue(ctx context.Context, opt repository.ListDueOptions) ([]model.Campaign, error) {
	return r.due, nil
}

func (r *fakeCampaignRepo) GetByID(ctx context.Context, id string) (model.Campaign, error) {
	c, ok := r.byID[id]
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCampaignRepo) UpdateNextScanAt(ctx context.Context, opt repository.UpdateNextScanAtOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanced[opt.ID] = opt.NextScanAt
	return nil
}

type fakeReportRepo struct {
	mu       sync.Mutex
	posts    []model.FacebookPost
	mentions []model.WebsiteMention
}

func (r *fakeReportRepo) InsertFacebookPosts(ctx context.Context, opt reportRepo.InsertFacebookPostsOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, opt.Posts...)
	return len(opt.Posts), nil
}

func (r *fakeReportRepo) InsertWebsiteMentions(ctx context.Context, opt reportRepo.InsertWebsiteMentionsOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mentions = append(r.mentions, opt.Mentions...)
	return len(opt.Mentions), nil
}

type fakeScanlogUC struct {
	mu      sync.Mutex
	entries []scanlog.AppendInput
}

func (f *fakeScanlogUC) Append(ctx context.Context, input scanlog.AppendInput) (model.ScanLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, input)
	return model.ScanLog{ID: int64(len(f.entries)), CampaignID: input.CampaignID, Status: input.Status}, nil
}

func (f *fakeScanlogUC) List(ctx context.Context, sc model.Scope, input scanlog.ListInput) (scanlog.ListOutput, error) {
	return scanlog.ListOutput{}, nil
}

func (f *fakeScanlogUC) ListSessions(ctx context.Context, sc model.Scope, input scanlog.ListSessionsInput) ([]model.ScanSession, error) {
	return nil, nil
}

func (f *fakeScanlogUC) byCampaign(campaignID string) []scanlog.AppendInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []scanlog.AppendInput
	for _, e := range f.entries {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out
}

func finalEntries(entries []scanlog.AppendInput) []scanlog.AppendInput {
	var out []scanlog.AppendInput
	for _, e := range entries {
		if e.LogType == model.LogTypeFinal {
			out = append(out, e)
		}
	}
	return out
}

type fakeSettingsUC struct {
	setting model.Setting
	err     error
}

func (f *fakeSettingsUC) GetByUserID(ctx context.Context, userID string) (model.Setting, error) {
	return f.setting, f.err
}

type fakeFacebookClient struct {
	posts  map[string][]facebook.Post
	errs   map[string]error
	panics map[string]bool
}

func (f *fakeFacebookClient) FetchGroupPosts(ctx context.Context, groupID string, since time.Time) ([]facebook.Post, error) {
	if f.panics[groupID] {
		panic("facebook client blew up")
	}
	if err, ok := f.errs[groupID]; ok {
		return nil, err
	}
	return f.posts[groupID], nil
}

type fakeWebsiteClient struct {
	pages map[string]website.Page
	errs  map[string]error
}

func (f *fakeWebsiteClient) FetchPage(ctx context.Context, pageURL string) (website.Page, error) {
	if err, ok := f.errs[pageURL]; ok {
		return website.Page{}, err
	}
	return f.pages[pageURL], nil
}

type fakeGemini struct {
	resp string
	err  error
}

func (f *fakeGemini) Generate(ctx context.Context, prompt string) (string, error) {
	return f.resp, f.err
}

// concurrencyGemini records how many Generate calls overlap.
type concurrencyGemini struct {
	mu       sync.Mutex
	inflight int
	max      int
}

func (g *concurrencyGemini) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.inflight++
	if g.inflight > g.max {
		g.max = g.inflight
	}
	g.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	g.mu.Lock()
	g.inflight--
	g.mu.Unlock()
	return `{"evaluation": "ok", "sentiment": "neutral"}`, nil
}

// blockingGemini never answers; it only returns once its context does.
type blockingGemini struct{}

func (blockingGemini) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// fakeRedis overrides only the lock operations; everything else panics
// through the embedded nil interface if reached.
type fakeRedis struct {
	redis.IRedis
	acquired bool
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return f.acquired, nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error { return nil }

type testEnv struct {
	campaigns *fakeCampaignRepo
	reports   *fakeReportRepo
	logs      *fakeScanlogUC
	fb        *fakeFacebookClient
	web       *fakeWebsiteClient
	gemini    gemini.IGemini
	redis     redis.IRedis
	cfg       Config
}

func newTestUC(t *testing.T, env *testEnv) scan.UseCase {
	t.Helper()
	if env.reports == nil {
		env.reports = &fakeReportRepo{}
	}
	if env.logs == nil {
		env.logs = &fakeScanlogUC{}
	}
	if env.fb == nil {
		env.fb = &fakeFacebookClient{}
	}
	if env.web == nil {
		env.web = &fakeWebsiteClient{}
	}
	if env.gemini == nil {
		env.gemini = &fakeGemini{resp: `{"evaluation": "relevant mention", "sentiment": "positive"}`}
	}
	return New(
		env.campaigns,
		env.reports,
		env.logs,
		&fakeSettingsUC{setting: model.Setting{FacebookAccessToken: "token"}},
		func(token string) facebook.IClient { return env.fb },
		env.web,
		env.gemini,
		env.redis,
		nil,
		nil,
		env.cfg,
		log.NewNoop(),
	)
}

func activeCampaign(id, sourceType string, sources, keywords []string) model.Campaign {
	return model.Campaign{
		ID:              id,
		UserID:          "u1",
		Sources:         sources,
		Keywords:        keywords,
		SourceType:      sourceType,
		ScanFrequency:   1,
		ScanUnit:        model.ScanUnitHour,
		Status:          model.CampaignStatusActive,
		AIFilterEnabled: true,
	}
}

func TestTriggerCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("facebook scan persists matched posts despite a failed group", func(t *testing.T) {
		c := activeCampaign("c1", model.SourceTypeFacebook, []string{"g1", "g2"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{
				posts: map[string][]facebook.Post{
					"g1": {
						{ID: "p1", GroupID: "g1", Content: "Acme launched a new product", PostedAt: time.Now()},
						{ID: "p2", GroupID: "g1", Content: "unrelated chatter", PostedAt: time.Now()},
					},
				},
				errs: map[string]error{"g2": errors.New("boom")},
			},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c1"})
		require.NoError(t, err)

		require.Len(t, env.reports.posts, 1)
		p := env.reports.posts[0]
		assert.Equal(t, "p1", p.PostID)
		assert.Equal(t, []string{"acme"}, p.MatchedKeywords)
		assert.Equal(t, "relevant mention", p.Evaluation)
		require.NotNil(t, p.Sentiment)
		assert.Equal(t, model.SentimentPositive, *p.Sentiment)

		// started, 4 stage announcements, one fetch-failure entry, final.
		entries := env.logs.byCampaign("c1")
		require.Len(t, entries, 7)

		// The failed group lands on a fetch progress entry, not the
		// final one.
		fetchEntry := entries[2]
		assert.Equal(t, model.ScanLogStatusError, fetchEntry.Status)
		assert.Equal(t, model.LogTypeProgress, fetchEntry.LogType)
		assert.Equal(t, []string{"g2"}, fetchEntry.Details["failed_sources"])

		finals := finalEntries(entries)
		require.Len(t, finals, 1)
		assert.Equal(t, model.ScanLogStatusSuccess, finals[0].Status)
		assert.Equal(t, 1, finals[0].Details["found_items"])
		assert.Equal(t, model.SourceTypeFacebook, finals[0].SourceType)
	})

	t.Run("website scan persists matched mentions without enrichment", func(t *testing.T) {
		c := activeCampaign("c2", model.SourceTypeWebsite, []string{"https://news.example.com"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			web: &fakeWebsiteClient{
				pages: map[string]website.Page{
					"https://news.example.com": {
						URL:     "https://news.example.com",
						Title:   "Acme in the news",
						Content: "A long article about Acme.",
					},
				},
			},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c2"})
		require.NoError(t, err)

		require.Len(t, env.reports.mentions, 1)
		m := env.reports.mentions[0]
		assert.Equal(t, "https://news.example.com", m.URL)
		assert.Equal(t, []string{"acme"}, m.MatchedKeywords)

		// Web mentions are never sent through AI evaluation.
		assert.Empty(t, m.Evaluation)
		assert.Nil(t, m.Sentiment)
	})

	t.Run("empty keyword list keeps everything fetched", func(t *testing.T) {
		c := activeCampaign("c11", model.SourceTypeFacebook, []string{"g1"}, nil)
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {
					{ID: "p1", GroupID: "g1", Content: "anything at all", PostedAt: time.Now()},
					{ID: "p2", GroupID: "g1", Content: "and more", PostedAt: time.Now()},
				},
			}},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c11"})
		require.NoError(t, err)
		assert.Len(t, env.reports.posts, 2)
	})

	t.Run("ai filter disabled skips enrichment", func(t *testing.T) {
		c := activeCampaign("c12", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		c.AIFilterEnabled = false
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme mention", PostedAt: time.Now()}},
			}},
			gemini: &fakeGemini{err: errors.New("should not be called")},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c12"})
		require.NoError(t, err)

		require.Len(t, env.reports.posts, 1)
		assert.Empty(t, env.reports.posts[0].Evaluation)
		assert.Nil(t, env.reports.posts[0].Sentiment)
	})

	t.Run("all sources failing fails the scan but advances the schedule", func(t *testing.T) {
		c := activeCampaign("c3", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb:        &fakeFacebookClient{errs: map[string]error{"g1": errors.New("unreachable")}},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c3"})
		require.ErrorIs(t, err, scan.ErrAllSourcesFailed)

		assert.Empty(t, env.reports.posts)
		finals := finalEntries(env.logs.byCampaign("c3"))
		require.Len(t, finals, 1)
		assert.Equal(t, model.ScanLogStatusError, finals[0].Status)
		assert.Contains(t, env.campaigns.advanced, "c3")
	})

	t.Run("no matches completes with nothing persisted", func(t *testing.T) {
		c := activeCampaign("c4", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "nothing relevant", PostedAt: time.Now()}},
			}},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c4"})
		require.NoError(t, err)

		assert.Empty(t, env.reports.posts)

		// started, fetch and filter stages, final. No enrich or persist.
		entries := env.logs.byCampaign("c4")
		require.Len(t, entries, 4)
		finals := finalEntries(entries)
		require.Len(t, finals, 1)
		assert.Equal(t, model.ScanLogStatusSuccess, finals[0].Status)
		assert.Equal(t, 0, finals[0].Details["found_items"])
	})

	t.Run("enrichment calls run in parallel", func(t *testing.T) {
		c := activeCampaign("c13", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		g := &concurrencyGemini{}
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {
					{ID: "p1", GroupID: "g1", Content: "acme one", PostedAt: time.Now()},
					{ID: "p2", GroupID: "g1", Content: "acme two", PostedAt: time.Now()},
					{ID: "p3", GroupID: "g1", Content: "acme three", PostedAt: time.Now()},
					{ID: "p4", GroupID: "g1", Content: "acme four", PostedAt: time.Now()},
				},
			}},
			gemini: g,
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c13"})
		require.NoError(t, err)

		assert.Len(t, env.reports.posts, 4)
		assert.Greater(t, g.max, 1, "per-item calls should overlap")
	})

	t.Run("slow ai call is cut off by the per-item timeout", func(t *testing.T) {
		c := activeCampaign("c14", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme mention", PostedAt: time.Now()}},
			}},
			gemini: blockingGemini{},
			cfg:    Config{EnrichTimeoutSeconds: 1},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c14"})
		require.NoError(t, err)

		require.Len(t, env.reports.posts, 1)
		assert.Equal(t, model.EvaluationUnavailable, env.reports.posts[0].Evaluation)
		assert.Nil(t, env.reports.posts[0].Sentiment)
	})

	t.Run("ai failure stores placeholder evaluation and no sentiment", func(t *testing.T) {
		c := activeCampaign("c5", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme mention", PostedAt: time.Now()}},
			}},
			gemini: &fakeGemini{err: errors.New("quota exceeded")},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c5"})
		require.NoError(t, err)

		require.Len(t, env.reports.posts, 1)
		assert.Equal(t, model.EvaluationUnavailable, env.reports.posts[0].Evaluation)
		assert.Nil(t, env.reports.posts[0].Sentiment)
	})

	t.Run("unrecognized sentiment keeps the evaluation", func(t *testing.T) {
		c := activeCampaign("c6", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			fb: &fakeFacebookClient{posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme mention", PostedAt: time.Now()}},
			}},
			gemini: &fakeGemini{resp: "```json\n{\"evaluation\": \"mixed feelings\", \"sentiment\": \"ambivalent\"}\n```"},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c6"})
		require.NoError(t, err)

		require.Len(t, env.reports.posts, 1)
		assert.Equal(t, "mixed feelings", env.reports.posts[0].Evaluation)
		assert.Nil(t, env.reports.posts[0].Sentiment)
	})

	t.Run("unknown source type logs nothing and advances the schedule", func(t *testing.T) {
		c := activeCampaign("c7", "instagram", []string{"x"}, []string{"acme"})
		env := &testEnv{campaigns: newFakeCampaignRepo(c)}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c7"})
		require.NoError(t, err)
		assert.Empty(t, env.logs.byCampaign("c7"))
		assert.Contains(t, env.campaigns.advanced, "c7")
	})

	t.Run("unknown campaign", func(t *testing.T) {
		env := &testEnv{campaigns: newFakeCampaignRepo()}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "nope"})
		require.ErrorIs(t, err, scan.ErrCampaignNotFound)
	})

	t.Run("paused campaign", func(t *testing.T) {
		c := activeCampaign("c8", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		c.Status = model.CampaignStatusPaused
		env := &testEnv{campaigns: newFakeCampaignRepo(c)}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c8"})
		require.ErrorIs(t, err, scan.ErrCampaignNotActive)
		assert.Empty(t, env.logs.byCampaign("c8"))
	})

	t.Run("expired campaign", func(t *testing.T) {
		c := activeCampaign("c9", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		past := time.Now().Add(-time.Hour)
		c.CampaignEndDate = &past
		env := &testEnv{campaigns: newFakeCampaignRepo(c)}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c9"})
		require.ErrorIs(t, err, scan.ErrCampaignExpired)
	})

	t.Run("locked campaign is skipped without advancing the schedule", func(t *testing.T) {
		c := activeCampaign("c10", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
		env := &testEnv{
			campaigns: newFakeCampaignRepo(c),
			redis:     &fakeRedis{acquired: false},
		}
		uc := newTestUC(t, env)

		err := uc.TriggerCampaign(ctx, model.Scope{}, scan.TriggerCampaignInput{CampaignID: "c10"})
		require.ErrorIs(t, err, scan.ErrScanInProgress)
		assert.Empty(t, env.logs.byCampaign("c10"))
		assert.NotContains(t, env.campaigns.advanced, "c10")
	})
}

func TestTriggerDue(t *testing.T) {
	ctx := context.Background()

	ok := activeCampaign("ok", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
	bad := activeCampaign("bad", model.SourceTypeFacebook, []string{"g2"}, []string{"acme"})

	env := &testEnv{
		campaigns: newFakeCampaignRepo(ok, bad),
		fb: &fakeFacebookClient{
			posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme rocks", PostedAt: time.Now()}},
			},
			errs: map[string]error{"g2": errors.New("unreachable")},
		},
	}
	uc := newTestUC(t, env)

	out, err := uc.TriggerDue(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Due)
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, 0, out.Skipped)

	// Both schedules advance, whatever the scan outcome was.
	assert.Contains(t, env.campaigns.advanced, "ok")
	assert.Contains(t, env.campaigns.advanced, "bad")
}

func TestTriggerDuePanicIsolation(t *testing.T) {
	ctx := context.Background()

	ok := activeCampaign("ok", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
	broken := activeCampaign("broken", model.SourceTypeFacebook, []string{"g2"}, []string{"acme"})

	env := &testEnv{
		campaigns: newFakeCampaignRepo(ok, broken),
		fb: &fakeFacebookClient{
			posts: map[string][]facebook.Post{
				"g1": {{ID: "p1", GroupID: "g1", Content: "acme rocks", PostedAt: time.Now()}},
			},
			panics: map[string]bool{"g2": true},
		},
	}
	uc := newTestUC(t, env)

	out, err := uc.TriggerDue(ctx)
	require.NoError(t, err)

	// The panicking campaign is contained: the sibling still scans and
	// both schedules advance.
	assert.Equal(t, 1, out.Scanned)
	assert.Equal(t, 1, out.Failed)
	assert.Len(t, env.reports.posts, 1)
	assert.Contains(t, env.campaigns.advanced, "ok")
	assert.Contains(t, env.campaigns.advanced, "broken")

	finals := finalEntries(env.logs.byCampaign("broken"))
	require.Len(t, finals, 1)
	assert.Equal(t, model.ScanLogStatusError, finals[0].Status)
}

func TestFilterByStartDate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := activeCampaign("c1", model.SourceTypeFacebook, []string{"g1"}, []string{"acme"})
	c.ScanStartDate = &start

	old := start.Add(-time.Hour)
	fresh := start.Add(time.Hour)
	items := []fetchedItem{
		{Source: "g1", Post: &model.FacebookPost{PostID: "old", PostedAt: &old}},
		{Source: "g1", Post: &model.FacebookPost{PostID: "fresh", PostedAt: &fresh}},
		{Source: "w", Page: &websitePage{URL: "https://example.com"}},
	}

	kept := filterByStartDate(c, items)
	require.Len(t, kept, 2)
	assert.Equal(t, "fresh", kept[0].Post.PostID)
	assert.NotNil(t, kept[1].Page)
}

func TestStripJSONFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripJSONFences(tc.in))
		})
	}
}
