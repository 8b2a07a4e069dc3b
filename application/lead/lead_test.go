package lead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	applead "github.com/ShohjahonSohibov/Aberno/application/lead"
	"github.com/ShohjahonSohibov/Aberno/constant"
	pubmocks "github.com/ShohjahonSohibov/Aberno/mocks/application/lead"
	leadmocks "github.com/ShohjahonSohibov/Aberno/mocks/repository/lead"
	"github.com/ShohjahonSohibov/Aberno/model"
	"github.com/ShohjahonSohibov/Aberno/thirdparty/rabbitmq"
	cerr "github.com/ShohjahonSohibov/Aberno/utils/errors"
)

func TestLeadApp_CreateLead(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := &model.Lead{ID: "l-1", Name: "Ali", Phone: "998901234567", Status: constant.LeadStatusNew, IsActive: true,
		Timestamps: model.Timestamps{CreatedAt: created}}

	tests := []struct {
		name     string
		req      *model.CreateLeadRequest
		mockCall func(repo *leadmocks.LeadRepository, pub *pubmocks.Publisher)
		wantErr  bool
	}{
		{
			name: "success: default status and event published",
			req:  &model.CreateLeadRequest{Name: "Ali", Phone: "998901234567"},
			mockCall: func(repo *leadmocks.LeadRepository, pub *pubmocks.Publisher) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
					return l.Status == constant.LeadStatusNew && l.IsActive
				})).Return(stored, nil).Once()
				pub.On("PublishLeadCreated", mock.Anything, rabbitmq.LeadCreatedMessage{
					LeadID: "l-1", Name: "Ali", Phone: "998901234567", CreatedAt: created,
				}).Return(nil).Once()
			},
		},
		{
			name: "success: publish failure does not fail creation",
			req:  &model.CreateLeadRequest{Name: "Ali", Status: "called"},
			mockCall: func(repo *leadmocks.LeadRepository, pub *pubmocks.Publisher) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Lead) bool {
					return l.Status == constant.LeadStatusCalled
				})).Return(stored, nil).Once()
				pub.On("PublishLeadCreated", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "error: store failure publishes nothing",
			req:  &model.CreateLeadRequest{Name: "Ali"},
			mockCall: func(repo *leadmocks.LeadRepository, pub *pubmocks.Publisher) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := leadmocks.NewLeadRepository(t)
			pub := pubmocks.NewPublisher(t)
			tt.mockCall(repo, pub)

			got, err := applead.NewLeadApp(repo, pub).CreateLead(context.Background(), tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, constant.ErrInternal))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "l-1", got.ID)
		})
	}
}

func TestLeadApp_CreateLead_NoPublisher(t *testing.T) {
	repo := leadmocks.NewLeadRepository(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(&model.Lead{ID: "l-1"}, nil).Once()

	_, err := applead.NewLeadApp(repo, nil).CreateLead(context.Background(), &model.CreateLeadRequest{Name: "Ali"})
	assert.NoError(t, err)
}

func TestLeadApp_UpdateLeadStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		mockCall func(repo *leadmocks.LeadRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success",
			status: "interested",
			mockCall: func(repo *leadmocks.LeadRepository) {
				repo.On("GetByID", mock.Anything, "l-1").Return(&model.Lead{ID: "l-1", Status: constant.LeadStatusNew}, nil).Once()
				repo.On("UpdateStatus", mock.Anything, "l-1", constant.LeadStatusInterested).Return(nil).Once()
			},
		},
		{
			name:     "error: unknown status",
			status:   "archived",
			mockCall: func(repo *leadmocks.LeadRepository) {},
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:   "error: not found",
			status: "called",
			mockCall: func(repo *leadmocks.LeadRepository) {
				repo.On("GetByID", mock.Anything, "l-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := leadmocks.NewLeadRepository(t)
			tt.mockCall(repo)

			got, err := applead.NewLeadApp(repo, nil).UpdateLeadStatus(context.Background(), "l-1", tt.status)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.LeadStatus(tt.status), got.Status)
		})
	}
}

func TestLeadApp_UpdateLead_Merge(t *testing.T) {
	repo := leadmocks.NewLeadRepository(t)
	repo.On("GetByID", mock.Anything, "l-1").
		Return(&model.Lead{ID: "l-1", Name: "Ali", Phone: "1", IsActive: true}, nil).Once()
	repo.On("Update", mock.Anything, &model.Lead{ID: "l-1", Name: "Ali", Phone: "2", IsActive: false}).Return(nil).Once()

	inactive := false
	got, err := applead.NewLeadApp(repo, nil).UpdateLead(context.Background(), "l-1", &model.UpdateLeadRequest{Phone: "2", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "2", got.Phone)
}
