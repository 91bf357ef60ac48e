// Package policy concentra o modelo de papéis. As capacidades são derivadas
// aqui uma única vez e consumidas por autorização e apresentação — nenhum
// outro ponto do sistema compara a string do papel diretamente.
package policy

type Role string

const (
	RoleManager Role = "gerente"
	RoleStaff   Role = "funcionario"
)

func (r Role) Known() bool {
	return r == RoleManager || r == RoleStaff
}

// Cadastro de novos funcionários é exclusivo do gerente
func (r Role) CanRegisterUsers() bool {
	return r == RoleManager
}

// Atualização do catálogo (imagem de categoria) é exclusiva do gerente
func (r Role) CanManageCatalog() bool {
	return r == RoleManager
}

func (r Role) CanViewAuditLogs() bool {
	return r == RoleManager
}
