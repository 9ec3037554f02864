package domain

import "time"

// SaleTimestampLayout é o formato gravado em data_venda: UTC, precisão de
// segundos, sem offset de fuso embutido.
const SaleTimestampLayout = "2006-01-02 15:04:05"

// ProductSale é imutável depois de gravada; não existe rota de atualização
// ou exclusão de vendas.
type ProductSale struct {
	ID        int       `json:"id"`
	Recibo    string    `json:"recibo"`
	DataVenda time.Time `json:"data_venda"`
	ClientID  int       `json:"id_cliente"`
	ProductID int       `json:"id_produto"`
}

type ServiceSale struct {
	ID         int       `json:"id"`
	Recibo     string    `json:"recibo"`
	DataVenda  time.Time `json:"data_venda"`
	ClientID   int       `json:"id_cliente"`
	ServiceID  int       `json:"id_servico"`
	EmployeeID int       `json:"id_funcionario"`
}
