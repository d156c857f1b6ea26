// Package storage implementa la persistencia local de la terminal: un almacén
// key-value embebido sobre SQLite con dos entradas, la lista de productos y la
// lista de ventas, serializadas como JSON plano. Una clave ausente significa
// "sin datos todavía", no un error; los campos JSON desconocidos se ignoran al
// leer.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Claves del almacén.
const (
	keyProducts = "antoniotech_products"
	keySales    = "antoniotech_sales"
)

type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// KV almacén key-value embebido sobre SQLite vía GORM.
type KV struct {
	db *gorm.DB
}

// OpenKV abre (o crea) el archivo de base de datos y migra la tabla.
// path ":memory:" abre una base en memoria para pruebas.
func OpenKV(path string) (*KV, error) {
	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", path, err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("storage: migrar kv_entries: %w", err)
	}
	return &KV{db: db}, nil
}

// Get devuelve el valor de la clave y si existe.
func (kv *KV) Get(key string) ([]byte, bool, error) {
	var e kvEntry
	err := kv.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: leer %q: %w", key, err)
	}
	return e.Value, true, nil
}

// Put escribe (upsert) una clave.
func (kv *KV) Put(key string, value []byte) error {
	err := kv.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("storage: escribir %q: %w", key, err)
	}
	return nil
}

// PutAll escribe varias claves en una sola transacción: o se persisten todas
// o ninguna. Es la base de la atomicidad del cierre de venta (libro + stock).
func (kv *KV) PutAll(entries map[string][]byte) error {
	return kv.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&kvEntry{Key: key, Value: value}).Error
			if err != nil {
				return fmt.Errorf("storage: escribir %q: %w", key, err)
			}
		}
		return nil
	})
}
