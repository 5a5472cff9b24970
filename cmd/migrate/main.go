package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS produtos (
		id VARCHAR(12) PRIMARY KEY,
		titulo TEXT NOT NULL,
		preco NUMERIC(12,2) NOT NULL CHECK (preco >= 0),
		descricao TEXT,
		tag TEXT,
		image TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// Sem FK em produto_id: uma compra pode referenciar um produto já
	// removido do catálogo e o dashboard precisa tolerar isso
	`CREATE TABLE IF NOT EXISTS produtos_comprados (
		id VARCHAR(12) PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL,
		produto_id VARCHAR(12),
		preco_venda NUMERIC(12,2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS produtos_comprados_date_idx ON produtos_comprados (date)`,
	`CREATE INDEX IF NOT EXISTS produtos_comprados_produto_id_idx ON produtos_comprados (produto_id)`,
}

type seedProduto struct {
	Titulo    string
	Preco     float64
	Descricao string
	Tag       string
}

var seedProdutos = []seedProduto{
	{"Curso de Marketing Digital", 297.00, "Do zero à primeira campanha", "marketing"},
	{"Curso de Tráfego Pago", 497.00, "Meta Ads e Google Ads na prática", "trafego"},
	{"Mentoria de Vendas", 997.00, "Acompanhamento individual por 3 meses", "mentoria"},
}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createTables(db *sql.DB) {
	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("ERRO ao executar statement [%d/%d]: %v", i+1, len(statements), err)
		}
	}
	log.Println("Tabelas criadas/verificadas com sucesso")
}

func insertSeedProdutos(db *sql.DB) {
	log.Printf("Iniciando inserção de %d produtos de demonstração...", len(seedProdutos))

	stmt, err := db.Prepare(`INSERT INTO produtos (id, titulo, preco, descricao, tag, image) VALUES ($1, $2, $3, $4, $5, '')`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para produtos: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	errorCount := 0

	for i, p := range seedProdutos {
		id := generateID()
		if _, err := stmt.Exec(id, p.Titulo, p.Preco, p.Descricao, p.Tag); err != nil {
			log.Printf("ERRO ao inserir produto [%d/%d] %s: %v", i+1, len(seedProdutos), p.Titulo, err)
			errorCount++
			continue
		}
		successCount++
	}

	log.Printf("Inserção de produtos concluída. Sucesso: %d, Erros: %d", successCount, errorCount)
}

func dsnFromEnv() string {
	driver := envOrDefault("DATABASE_DRIVER", "postgres")
	user := envOrDefault("DATABASE_USER", "postgres")
	password := envOrDefault("DATABASE_PASSWORD", "root")
	url := envOrDefault("DATABASE_URL", "localhost:5432/vendas?sslmode=disable")

	return fmt.Sprintf("%s://%s:%s@%s", driver, user, password, url)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	seed := flag.Bool("seed", false, "insere produtos de demonstração após criar as tabelas")
	flag.Parse()

	setupLogger()
	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", dsnFromEnv())
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createTables(db)

	if *seed {
		insertSeedProdutos(db)
	}

	log.Println("Migração concluída!")
}
