package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vocabquest/server/internal/dto"
	"github.com/vocabquest/server/internal/model"
	"github.com/vocabquest/server/internal/repository"
)

type ParentService interface {
	CreateLink(req dto.ParentLinkCreateDTO) (*dto.ParentLinkDTO, error)
	RedeemLink(req dto.ParentLinkRedeemDTO) (*dto.ParentLinkDTO, error)
	Report(parentID uint, testType string) (*dto.ParentReportDTO, error)
}

type parentService struct {
	linkRepo           repository.ParentLinkRepository
	accountRepo        repository.AccountRepository
	attemptRepo        repository.AttemptRepository
	unitService        UnitService
	leaderboardService LeaderboardService
}

func NewParentService(
	linkRepo repository.ParentLinkRepository,
	accountRepo repository.AccountRepository,
	attemptRepo repository.AttemptRepository,
	unitService UnitService,
	leaderboardService LeaderboardService,
) ParentService {
	return &parentService{
		linkRepo:           linkRepo,
		accountRepo:        accountRepo,
		attemptRepo:        attemptRepo,
		unitService:        unitService,
		leaderboardService: leaderboardService,
	}
}

func (s *parentService) CreateLink(req dto.ParentLinkCreateDTO) (*dto.ParentLinkDTO, error) {
	if _, err := s.accountRepo.FindByID(req.ParentID); err != nil {
		return nil, fmt.Errorf("parent account not found with ID %d: %w", req.ParentID, err)
	}

	link := model.ParentLink{
		ParentID:   req.ParentID,
		InviteCode: uuid.NewString(),
		Status:     model.LinkStatusPending,
	}
	if err := s.linkRepo.Create(&link); err != nil {
		log.Error().Err(err).Uint("parentID", req.ParentID).Msg("CreateLink: failed to create link")
		return nil, fmt.Errorf("error creating parent link: %w", err)
	}
	return linkDTO(&link), nil
}

func (s *parentService) RedeemLink(req dto.ParentLinkRedeemDTO) (*dto.ParentLinkDTO, error) {
	link, err := s.linkRepo.FindByCode(req.InviteCode)
	if err != nil {
		return nil, fmt.Errorf("invite code not found: %w", err)
	}
	if link.Status == model.LinkStatusActive {
		return nil, ErrLinkRedeemed
	}
	if link.ParentID == req.StudentID {
		return nil, ErrSelfLink
	}
	if _, err := s.accountRepo.FindByID(req.StudentID); err != nil {
		return nil, fmt.Errorf("student account not found with ID %d: %w", req.StudentID, err)
	}

	studentID := req.StudentID
	link.StudentID = &studentID
	link.Status = model.LinkStatusActive
	if err := s.linkRepo.Update(link); err != nil {
		log.Error().Err(err).Uint("linkID", link.ID).Msg("RedeemLink: failed to activate link")
		return nil, fmt.Errorf("error redeeming invite code: %w", err)
	}

	log.Info().Uint("parentID", link.ParentID).Uint("studentID", studentID).Msg("Parent link activated")
	return linkDTO(link), nil
}

const reportRecentAttempts = 10

// Report assembles each linked student's progress for one test type:
// the progression summary, the derived unit dashboard and the latest
// attempts. Everything is read through the same services the student's own
// dashboard uses, so parent and student always see the same numbers.
func (s *parentService) Report(parentID uint, testType string) (*dto.ParentReportDTO, error) {
	if _, err := s.accountRepo.FindByID(parentID); err != nil {
		return nil, fmt.Errorf("parent account not found with ID %d: %w", parentID, err)
	}
	links, err := s.linkRepo.FindActiveByParent(parentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching parent links: %w", err)
	}

	report := dto.ParentReportDTO{ParentID: parentID, TestType: testType}
	for _, link := range links {
		if link.StudentID == nil {
			continue
		}
		studentID := *link.StudentID

		summary, err := s.leaderboardService.Summary(studentID, testType)
		if err != nil {
			log.Warn().Err(err).Uint("studentID", studentID).Msg("Report: skipping student summary")
			continue
		}
		units, err := s.unitService.ListUnits(testType, studentID)
		if err != nil {
			log.Warn().Err(err).Uint("studentID", studentID).Msg("Report: skipping student units")
			continue
		}

		unitIDs := make(map[uint]struct{}, len(units))
		for _, u := range units {
			unitIDs[u.ID] = struct{}{}
		}
		attempts, err := s.attemptRepo.FindRecentByAccount(studentID, reportRecentAttempts*2)
		if err != nil {
			return nil, fmt.Errorf("error fetching recent attempts: %w", err)
		}
		var rows []dto.AttemptRowDTO
		for _, a := range attempts {
			if _, ok := unitIDs[a.UnitID]; !ok {
				continue // attempt belongs to another test type
			}
			rows = append(rows, dto.AttemptRowDTO{
				UnitID:      a.UnitID,
				Game:        a.Game,
				Score:       a.Score,
				Completed:   a.Completed,
				SubmittedAt: a.SubmittedAt,
			})
			if len(rows) == reportRecentAttempts {
				break
			}
		}

		report.Students = append(report.Students, dto.StudentReportDTO{
			Summary:        *summary,
			Units:          units,
			RecentAttempts: rows,
		})
	}
	return &report, nil
}

func linkDTO(link *model.ParentLink) *dto.ParentLinkDTO {
	return &dto.ParentLinkDTO{
		ID:         link.ID,
		ParentID:   link.ParentID,
		StudentID:  link.StudentID,
		InviteCode: link.InviteCode,
		Status:     link.Status,
	}
}
