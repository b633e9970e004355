package repository

import "scanner-srv/internal/model"

type InsertFacebookPostsOptions struct {
	CampaignID string
	Posts      []model.FacebookPost
}

type InsertWebsiteMentionsOptions struct {
	CampaignID string
	Mentions   []model.WebsiteMention
}
