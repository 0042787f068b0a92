package transactions

import (
	"context"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "transactions"

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (r *TransactionMongoRepository) Insert(ctx context.Context, transaction *models.Transaction) error {
	now := time.Now()
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = now
	}
	transaction.UpdatedAt = now

	if _, err := r.Collection.InsertOne(ctx, transaction); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *TransactionMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Collection.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) UpdateStatusByAppointmentID(ctx context.Context, appointmentID string, status models.TransactionStatusPayment, gatewayCode string) error {
	update := bson.M{
		"$set": bson.M{
			"status_payment": status,
			"gateway_code":   gatewayCode,
			"updated_at":     time.Now(),
		},
	}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"appointment_id": appointmentID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
