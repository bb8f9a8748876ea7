package usecase

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 管理者操作ログの閲覧
type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

type ListAuditLogsInput struct {
	Action       string
	ResourceType string
	ResourceID   int64
	Limit        int
	Offset       int
}

func (u *AuditLogUsecase) List(ctx context.Context, in ListAuditLogsInput) ([]model.AuditLog, error) {
	if in.Limit < 0 || in.Limit > 200 {
		return nil, NewError(KindValidation, "invalid limit")
	}
	if in.Offset < 0 {
		return nil, NewError(KindValidation, "invalid offset")
	}

	f := repo.AuditLogFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.Action != "" {
		a := model.AuditAction(in.Action)
		if a != model.AuditActionUpdateStock && a != model.AuditActionUpdateOrderStatus {
			return nil, NewError(KindValidation, "invalid action")
		}
		f.Action = &a
	}
	if in.ResourceType != "" {
		rt := model.AuditResourceType(in.ResourceType)
		f.ResourceType = &rt
	}
	if in.ResourceID > 0 {
		f.ResourceID = &in.ResourceID
	}

	logs, err := u.auditRepo.List(ctx, f)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return logs, nil
}
