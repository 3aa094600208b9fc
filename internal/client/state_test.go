package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/api/dto"
)

func sampleJobs() []dto.JobResponse {
	return []dto.JobResponse{
		{ID: "1", Title: "Backend Engineer", Company: "Acme", Location: "Remote"},
		{ID: "2", Title: "Designer", Company: "Globex", Location: "Pune"},
		{ID: "3", Title: "Data Analyst", Company: "Initech", Location: "Bengaluru"},
	}
}

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.Equal(t, PageHome, s.CurrentPage)
	assert.Nil(t, s.SelectedJob)
	assert.Empty(t, s.Jobs)
	assert.True(t, s.IsLoading)
	assert.Equal(t, AuthModeLogin, s.AuthMode)
	assert.False(t, s.ShowAuth)
	assert.Nil(t, s.User)
}

func TestSearchIsDestructive(t *testing.T) {
	s := Reduce(InitialState(), FetchJobsSucceeded{Jobs: sampleJobs()})
	require.False(t, s.IsLoading)

	s = Reduce(s, Search{Query: "PUNE"})
	assert.Equal(t, PageListings, s.CurrentPage)
	require.Len(t, s.Jobs, 1)
	assert.Equal(t, "2", s.Jobs[0].ID)

	s = Reduce(s, Search{Query: "acme"})
	assert.Empty(t, s.Jobs)

	s = Reduce(s, FetchJobsSucceeded{Jobs: sampleJobs()})
	assert.Len(t, s.Jobs, 3)
}

func TestSearchMatchesTitleCompanyLocation(t *testing.T) {
	base := Reduce(InitialState(), FetchJobsSucceeded{Jobs: sampleJobs()})
	assert.Len(t, Reduce(base, Search{Query: "engineer"}).Jobs, 1)
	assert.Len(t, Reduce(base, Search{Query: "globex"}).Jobs, 1)
	assert.Len(t, Reduce(base, Search{Query: "bengaluru"}).Jobs, 1)
	assert.Len(t, Reduce(base, Search{Query: ""}).Jobs, 3)
	assert.Len(t, base.Jobs, 3)
}

func TestNavigationAndAuth(t *testing.T) {
	jobs := sampleJobs()
	s := Reduce(InitialState(), Navigate{Page: PageDetails, Job: &jobs[0]})
	assert.Equal(t, PageDetails, s.CurrentPage)
	require.NotNil(t, s.SelectedJob)
	assert.Equal(t, "1", s.SelectedJob.ID)

	s = Reduce(s, Navigate{Page: PageEmployers})
	assert.Nil(t, s.SelectedJob)

	s = Reduce(s, OpenAuth{Mode: AuthModeSignup})
	assert.True(t, s.ShowAuth)
	assert.Equal(t, AuthModeSignup, s.AuthMode)
	s = Reduce(s, SetAuthMode{Mode: AuthModeLogin})
	assert.Equal(t, AuthModeLogin, s.AuthMode)

	s = Reduce(s, LoggedIn{User: dto.UserResponse{ID: "u1", Name: "Alice", Role: "employer"}})
	assert.False(t, s.ShowAuth)
	require.NotNil(t, s.User)
	assert.Equal(t, "Alice", s.User.Name)

	s = Reduce(s, LoggedOut{})
	assert.Nil(t, s.User)
	assert.Equal(t, PageHome, s.CurrentPage)
}

func TestJobPostedResetsView(t *testing.T) {
	jobs := sampleJobs()
	s := Reduce(InitialState(), FetchJobsFailed{Message: "boom"})
	s = Reduce(s, Navigate{Page: PagePostJob, Job: &jobs[1]})

	s = Reduce(s, JobPosted{})
	assert.Equal(t, PageListings, s.CurrentPage)
	assert.Empty(t, s.Error)
	assert.Nil(t, s.SelectedJob)
	assert.True(t, s.IsLoading)
}

func TestStoreDispatchIsSerialized(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(FetchJobsSucceeded{Jobs: sampleJobs()})
			store.Dispatch(Search{Query: "a"})
		}()
	}
	wg.Wait()
	assert.Equal(t, PageListings, store.State().CurrentPage)
}
