package authz

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	casbinTableName = "casbin_rule"

	// RoleUser 买家角色
	RoleUser = "role:user"
	// RoleSeller 卖家角色
	RoleSeller = "role:seller"
)

const defaultRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Service Casbin 授权服务
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务并保证基础角色策略存在
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}

	m, err := model.NewModelFromString(defaultRBACModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	service := &Service{enforcer: enforcer}
	if err := service.ensureDefaultPolicies(); err != nil {
		return nil, err
	}
	return service, nil
}

// ensureDefaultPolicies 写入买家/卖家的基础路由策略
func (s *Service) ensureDefaultPolicies() error {
	policies := [][]string{
		{RoleUser, "/api/user/*", "*"},
		{RoleUser, "/api/cart", "*"},
		{RoleUser, "/api/cart/*", "*"},
		{RoleUser, "/cart/*", "*"},
		{RoleUser, "/cart", "*"},
		{RoleUser, "/api/Rorder", "*"},
		{RoleUser, "/orders", "*"},
		{RoleSeller, "/api/seller/*", "*"},
	}
	for _, policy := range policies {
		if _, err := s.enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("ensure authz policy failed: %w", err)
		}
	}
	return nil
}

// Enforce 执行授权判断
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	if s == nil || s.enforcer == nil {
		return false, fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.Enforce(strings.TrimSpace(sub), obj, strings.ToUpper(strings.TrimSpace(act)))
}

// EnforceUser 按买家角色判定授权
func (s *Service) EnforceUser(obj, act string) (bool, error) {
	return s.Enforce(RoleUser, obj, act)
}

// EnforceSeller 按卖家角色判定授权
func (s *Service) EnforceSeller(obj, act string) (bool, error) {
	return s.Enforce(RoleSeller, obj, act)
}

// ReloadPolicy 重新加载策略
func (s *Service) ReloadPolicy() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}
	return s.enforcer.LoadPolicy()
}
