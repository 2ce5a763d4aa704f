// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/naka-gawa/github-activities/internal/domain"
)

// SearchOptions narrows activity searches to a window and, optionally, a
// single repository. ExcludePersonal drops repositories owned by the user
// and is ignored when Repository is set.
type SearchOptions struct {
	Since           time.Time
	Until           time.Time
	Repository      string
	ExcludePersonal bool
}

const searchDateLayout = "2006-01-02"

func (o SearchOptions) dateRange() string {
	return fmt.Sprintf("%s..%s", o.Since.Format(searchDateLayout), o.Until.Format(searchDateLayout))
}

func (o SearchOptions) scopeQualifier(username string) string {
	if o.Repository != "" {
		return fmt.Sprintf(" repo:%s", o.Repository)
	}
	if o.ExcludePersonal {
		return fmt.Sprintf(" -user:%s", username)
	}
	return ""
}

// Fetcher defines the behavior of a gateway for fetching a user's activity
// from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (domain.User, error)
	FetchCommits(ctx context.Context, username string, opts SearchOptions) ([]domain.Commit, error)
	FetchPullRequests(ctx context.Context, username string, opts SearchOptions) ([]domain.PullRequest, error)
	FetchIssues(ctx context.Context, username string, opts SearchOptions) ([]domain.Issue, error)
	FetchReviews(ctx context.Context, username string, opts SearchOptions) ([]domain.Review, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// issueSearchQuery fetches created PRs or issues through the GraphQL search
// API; both variants share one query shape since the search endpoint
// returns either node type.
type issueSearchQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename    string `graphql:"__typename"`
				PullRequest struct {
					Number     githubv4.Int
					Title      githubv4.String
					State      githubv4.PullRequestState
					CreatedAt  githubv4.DateTime
					UpdatedAt  githubv4.DateTime
					ClosedAt   githubv4.DateTime
					URL        githubv4.URI
					Repository struct {
						NameWithOwner string
					}
				} `graphql:"... on PullRequest"`
				Issue struct {
					Number     githubv4.Int
					Title      githubv4.String
					State      githubv4.IssueState
					CreatedAt  githubv4.DateTime
					UpdatedAt  githubv4.DateTime
					ClosedAt   githubv4.DateTime
					URL        githubv4.URI
					Repository struct {
						NameWithOwner string
					}
				} `graphql:"... on Issue"`
			}
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 100, after: $cursor)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchUser resolves the user's profile using the REST API.
func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (domain.User, error) {
	user, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}
	return domain.User{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
	}, nil
}

// FetchCommits searches commits authored by the user within the window and
// enriches each with line additions/deletions from the repository commit
// endpoint. Commits whose detailed stats cannot be fetched keep 0/0.
func (g *GitHubGateway) FetchCommits(ctx context.Context, username string, opts SearchOptions) ([]domain.Commit, error) {
	g.logger.Println("Fetching commit data using REST API...")
	query := fmt.Sprintf("author:%s committer-date:%s%s", username, opts.dateRange(), opts.scopeQualifier(username))
	searchOpts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 100}}

	commits := []domain.Commit{}
	for {
		result, resp, err := g.restClient.Search.Commits(ctx, query, searchOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to search commits with REST API: %w", err)
		}
		for _, commit := range result.Commits {
			repoName := commit.GetRepository().GetFullName()
			additions, deletions := g.fetchCommitStats(ctx, repoName, commit.GetSHA())
			commits = append(commits, domain.Commit{
				SHA:        commit.GetSHA(),
				Message:    commit.GetCommit().GetMessage(),
				Date:       commit.GetCommit().GetAuthor().GetDate().Time,
				Repository: repoName,
				URL:        commit.GetHTMLURL(),
				Additions:  additions,
				Deletions:  deletions,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		searchOpts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of commits...")
	}
	g.logger.Println("Completed fetching commit data.")
	return commits, nil
}

// fetchCommitStats retrieves additions/deletions for one commit. Failures
// degrade to 0/0 so a single unreadable commit does not fail the report.
func (g *GitHubGateway) fetchCommitStats(ctx context.Context, repoName, sha string) (int, int) {
	owner, name, ok := strings.Cut(repoName, "/")
	if !ok {
		return 0, 0
	}
	detailed, _, err := g.restClient.Repositories.GetCommit(ctx, owner, name, sha, nil)
	if err != nil {
		g.logger.Printf("  Could not get detailed stats for commit %s: %v", sha, err)
		return 0, 0
	}
	return detailed.GetStats().GetAdditions(), detailed.GetStats().GetDeletions()
}

// FetchPullRequests searches pull requests created by the user.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, username string, opts SearchOptions) ([]domain.PullRequest, error) {
	g.logger.Println("Fetching created PR data...")
	query := fmt.Sprintf("author:%s is:pr created:%s%s", username, opts.dateRange(), opts.scopeQualifier(username))

	prs := []domain.PullRequest{}
	err := g.searchIssueNodes(ctx, query, func(q *issueSearchQuery) {
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "PullRequest" {
				continue
			}
			pr := edge.Node.PullRequest
			prs = append(prs, domain.PullRequest{
				Number:     int(pr.Number),
				Title:      string(pr.Title),
				State:      strings.ToLower(string(pr.State)),
				CreatedAt:  pr.CreatedAt.Time,
				UpdatedAt:  pr.UpdatedAt.Time,
				ClosedAt:   optionalTime(pr.ClosedAt),
				Repository: pr.Repository.NameWithOwner,
				URL:        pr.URL.String(),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	g.logger.Println("Completed fetching pull request data.")
	return prs, nil
}

// FetchIssues searches issues created by the user.
func (g *GitHubGateway) FetchIssues(ctx context.Context, username string, opts SearchOptions) ([]domain.Issue, error) {
	g.logger.Println("Fetching issue data...")
	query := fmt.Sprintf("author:%s is:issue created:%s%s", username, opts.dateRange(), opts.scopeQualifier(username))

	issues := []domain.Issue{}
	err := g.searchIssueNodes(ctx, query, func(q *issueSearchQuery) {
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "Issue" {
				continue
			}
			issue := edge.Node.Issue
			issues = append(issues, domain.Issue{
				Number:     int(issue.Number),
				Title:      string(issue.Title),
				State:      strings.ToLower(string(issue.State)),
				CreatedAt:  issue.CreatedAt.Time,
				UpdatedAt:  issue.UpdatedAt.Time,
				ClosedAt:   optionalTime(issue.ClosedAt),
				Repository: issue.Repository.NameWithOwner,
				URL:        issue.URL.String(),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	g.logger.Println("Completed fetching issue data.")
	return issues, nil
}

// FetchReviews searches pull requests the user reviewed. The search API
// exposes only the PR's update date, which serves as the review timestamp.
func (g *GitHubGateway) FetchReviews(ctx context.Context, username string, opts SearchOptions) ([]domain.Review, error) {
	g.logger.Println("Fetching review data...")
	query := fmt.Sprintf("reviewed-by:%s is:pr updated:%s%s", username, opts.dateRange(), opts.scopeQualifier(username))

	reviews := []domain.Review{}
	err := g.searchIssueNodes(ctx, query, func(q *issueSearchQuery) {
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "PullRequest" {
				continue
			}
			pr := edge.Node.PullRequest
			reviews = append(reviews, domain.Review{
				PRNumber:   int(pr.Number),
				PRTitle:    string(pr.Title),
				Repository: pr.Repository.NameWithOwner,
				ReviewedAt: pr.UpdatedAt.Time,
				URL:        pr.URL.String(),
			})
		}
	})
	if err != nil {
		return nil, err
	}
	g.logger.Println("Completed fetching review data.")
	return reviews, nil
}

// searchIssueNodes pages through the GraphQL issue search, invoking collect
// for each page.
func (g *GitHubGateway) searchIssueNodes(ctx context.Context, query string, collect func(*issueSearchQuery)) error {
	variables := map[string]interface{}{
		"query":  githubv4.String(query),
		"cursor": (*githubv4.String)(nil),
	}
	for {
		var q issueSearchQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return fmt.Errorf("failed to execute GraphQL search query: %w", err)
		}
		collect(&q)
		if !q.Search.PageInfo.HasNextPage {
			return nil
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of search results...")
	}
}

func optionalTime(dt githubv4.DateTime) *time.Time {
	if dt.IsZero() {
		return nil
	}
	t := dt.Time
	return &t
}
