package delete_program

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/testutil"
)

func TestDeleteProgram(t *testing.T) {
	s := testutil.NewSeededStore(t)
	uc := NewInteractor(s.Programs, s.Outbox, s.ReadModel, s.Committer, s.Clock, s.Logger)

	programs, err := uc.Execute(context.Background(), &Request{ProgramID: "PROG002"})
	require.NoError(t, err)

	require.Len(t, programs, 4)
	for _, p := range programs {
		assert.NotEqual(t, "PROG002", p.ID)
	}

	ev := s.AssertEvent(t, "program.deleted", "PROG002")
	assert.Equal(t, "The program has been successfully deleted.", ev.Message)

	_, err = uc.Execute(context.Background(), &Request{ProgramID: "PROG002"})
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
}
