package service

import (
	"fmt"
	"testing"

	"cncbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_Current(t *testing.T) {
	tests := []struct {
		name         string
		mockText     string
		mockError    error
		expectedText string
		expectError  bool
	}{
		{
			name:         "bulletin present",
			mockText:     "Завтра собрание в 10:00",
			expectedText: "Завтра собрание в 10:00",
		},
		{
			name:         "never published",
			mockText:     "",
			expectedText: NoNewsText,
		},
		{
			name:         "blank bulletin treated as absent",
			mockText:     "   \n",
			expectedText: NoNewsText,
		},
		{
			name:        "read failure",
			mockError:   fmt.Errorf("db down"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockNewsRepository)
			mockRepo.On("Current").Return(tt.mockText, tt.mockError)

			svc := NewNewsService(mockRepo)

			text, err := svc.Current()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNewsService_Update(t *testing.T) {
	mockRepo := new(testutil.MockNewsRepository)
	mockRepo.On("Update", "Новый текст новостей").Return(nil)

	svc := NewNewsService(mockRepo)

	assert.NoError(t, svc.Update("Новый текст новостей"))
	mockRepo.AssertExpectations(t)
}

func TestNewsService_UpdateEmpty(t *testing.T) {
	mockRepo := new(testutil.MockNewsRepository)

	svc := NewNewsService(mockRepo)

	assert.Error(t, svc.Update("  "))
	mockRepo.AssertNotCalled(t, "Update")
}

func TestNewsService_UpdateFailure(t *testing.T) {
	mockRepo := new(testutil.MockNewsRepository)
	mockRepo.On("Update", "текст").Return(fmt.Errorf("db down"))

	svc := NewNewsService(mockRepo)

	assert.Error(t, svc.Update("текст"))
	mockRepo.AssertExpectations(t)
}
