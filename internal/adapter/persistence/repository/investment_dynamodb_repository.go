package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"estudio_admin/internal/domain/entities"
	"estudio_admin/internal/domain/money"
	"estudio_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvestmentsTableName  = "investments"
	defaultInstallmentsTableName = "investment_installments"
)

type investmentItem struct {
	ID                string `dynamodbav:"id"`
	Date              string `dynamodbav:"date"`
	Category          string `dynamodbav:"category"`
	Description       string `dynamodbav:"description,omitempty"`
	TotalValue        int64  `dynamodbav:"total_value_cents"`
	InstallmentsCount int    `dynamodbav:"installments_count"`
	InstallmentValue  int64  `dynamodbav:"installment_value_cents"`
	PaymentMethod     string `dynamodbav:"payment_method,omitempty"`
	ProductURL        string `dynamodbav:"product_url,omitempty"`
	ProductImageURL   string `dynamodbav:"product_image_url,omitempty"`
	Version           int64  `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

type installmentItem struct {
	InvestmentID      string `dynamodbav:"investment_id"`
	InstallmentNumber int    `dynamodbav:"installment_number"`
	ID                string `dynamodbav:"id"`
	Amount            int64  `dynamodbav:"amount_cents"`
	DueDate           string `dynamodbav:"due_date"`
	Status            string `dynamodbav:"status"`
	PaidAt            string `dynamodbav:"paid_at,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// InvestmentDynamoRepository persists Investment entities and their
// installments in two DynamoDB tables.
//
// Table requirements:
//   - investments: PK id (string)
//   - installments: PK investment_id (string), SK installment_number (number)
//
// Every write touching the installment set runs as a single
// TransactWriteItems call so readers never see a partial schedule.

type InvestmentDynamoRepository struct {
	ddb               DynamoAPI
	investmentsTable  string
	installmentsTable string
}

var _ interfaces.IInvestmentRepository = (*InvestmentDynamoRepository)(nil)

func NewInvestmentDynamoRepository(ddb DynamoAPI, investmentsTable, installmentsTable string) *InvestmentDynamoRepository {
	return &InvestmentDynamoRepository{
		ddb:               ddb,
		investmentsTable:  tableOrDefault(investmentsTable, defaultInvestmentsTableName),
		installmentsTable: tableOrDefault(installmentsTable, defaultInstallmentsTableName),
	}
}

func (r *InvestmentDynamoRepository) Create(ctx context.Context, inv entities.Investment, installments []entities.Installment) (entities.Investment, error) {
	invAV, err := attributevalue.MarshalMap(toInvestmentItem(inv))
	if err != nil {
		return entities.Investment{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(installments)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.investmentsTable),
			Item:                     invAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	})
	puts, err := r.installmentPuts(installments)
	if err != nil {
		return entities.Investment{}, err
	}
	items = append(items, puts...)

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.Investment{}, err
	}
	return inv, nil
}

func (r *InvestmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Investment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.investmentsTable),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Investment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Investment{}, nil
	}

	var it investmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Investment{}, err
	}
	inv := fromInvestmentItem(it)

	inv.Installments, err = r.installmentsOf(ctx, id)
	if err != nil {
		return entities.Investment{}, err
	}
	return inv, nil
}

// List reads both tables once and joins installments in memory.
func (r *InvestmentDynamoRepository) List(ctx context.Context) ([]entities.Investment, error) {
	rawInv, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.investmentsTable)})
	if err != nil {
		return nil, err
	}
	rawInst, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.installmentsTable)})
	if err != nil {
		return nil, err
	}

	byInvestment := make(map[string][]entities.Installment, len(rawInv))
	for _, m := range rawInst {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		byInvestment[it.InvestmentID] = append(byInvestment[it.InvestmentID], fromInstallmentItem(it))
	}

	out := make([]entities.Investment, 0, len(rawInv))
	for _, m := range rawInv {
		var it investmentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		inv := fromInvestmentItem(it)
		inv.Installments = byInvestment[inv.ID]
		out = append(out, inv)
	}
	return out, nil
}

// UpdateDetails writes the descriptive fields only. The schedule and its
// version are left alone.
func (r *InvestmentDynamoRepository) UpdateDetails(ctx context.Context, inv entities.Investment) (entities.Investment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.investmentsTable),
		Key:                 stringKey("id", inv.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #category = :category, #description = :description, " +
			"#payment_method = :payment_method, #product_url = :product_url, " +
			"#product_image_url = :product_image_url, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category":          &types.AttributeValueMemberS{Value: inv.Category},
			":description":       &types.AttributeValueMemberS{Value: inv.Description},
			":payment_method":    &types.AttributeValueMemberS{Value: inv.PaymentMethod},
			":product_url":       &types.AttributeValueMemberS{Value: inv.ProductURL},
			":product_image_url": &types.AttributeValueMemberS{Value: inv.ProductImageURL},
			":updated_at":        &types.AttributeValueMemberS{Value: formatTime(inv.UpdatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#category":          "category",
			"#description":       "description",
			"#payment_method":    "payment_method",
			"#product_url":       "product_url",
			"#product_image_url": "product_image_url",
			"#updated_at":        "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Investment{}, nil
		}
		return entities.Investment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Investment{}, nil
	}
	var it investmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Investment{}, err
	}
	return fromInvestmentItem(it), nil
}

// ReplaceSchedule rewrites the investment, puts installments 1..n over the
// old ones and deletes numbers n+1..previousCount, all in one transaction
// conditioned on the stored version still being expectedVersion.
func (r *InvestmentDynamoRepository) ReplaceSchedule(
	ctx context.Context,
	inv entities.Investment,
	expectedVersion int64,
	installments []entities.Installment,
	previousCount int,
) error {
	invAV, err := attributevalue.MarshalMap(toInvestmentItem(inv))
	if err != nil {
		return err
	}

	items := make([]types.TransactWriteItem, 0, 1+len(installments)+previousCount)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.investmentsTable),
			Item:                     invAV,
			ConditionExpression:      aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{"#version": "version"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			},
		},
	})
	puts, err := r.installmentPuts(installments)
	if err != nil {
		return err
	}
	items = append(items, puts...)
	for n := len(installments) + 1; n <= previousCount; n++ {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.installmentsTable),
				Key:       installmentKey(inv.ID, n),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isTransactionConditionFailure(err) {
			return fmt.Errorf("replace schedule of %s: %w", inv.ID, interfaces.ErrVersionConflict)
		}
		return err
	}
	return nil
}

// Delete removes the investment and all of its installments atomically.
// The installment keys are read against the stored version and the delete is
// conditioned on that version, so a concurrent schedule rewrite surfaces as
// ErrVersionConflict instead of leaving orphaned installments. It reports
// false when the investment did not exist.
func (r *InvestmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.investmentsTable),
		Key:                  stringKey("id", id),
		ProjectionExpression: aws.String("#version"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	var stored investmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &stored); err != nil {
		return false, err
	}

	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.installmentsTable),
		KeyConditionExpression: aws.String("investment_id = :iid"),
		ProjectionExpression:   aws.String("investment_id, installment_number"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}

	items := make([]types.TransactWriteItem, 0, len(raw)+1)
	items = append(items, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(r.investmentsTable),
			Key:                      stringKey("id", id),
			ConditionExpression:      aws.String("#version = :expected"),
			ExpressionAttributeNames: map[string]string{"#version": "version"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(stored.Version, 10)},
			},
		},
	})
	for _, key := range raw {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.installmentsTable),
				Key:       key,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isTransactionConditionFailure(err) {
			return false, fmt.Errorf("delete %s at version %d: %w", id, stored.Version, interfaces.ErrVersionConflict)
		}
		return false, err
	}
	return true, nil
}

// SetInstallmentStatus returns a zero Installment when the number does not
// exist for the investment.
func (r *InvestmentDynamoRepository) SetInstallmentStatus(
	ctx context.Context,
	investmentID string,
	number int,
	status entities.InstallmentStatus,
	paidAt *time.Time,
) (entities.Installment, error) {
	expr := "SET #status = :status REMOVE #paid_at"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	if paidAt != nil {
		expr = "SET #status = :status, #paid_at = :paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: formatTime(*paidAt)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.installmentsTable),
		Key:                       installmentKey(investmentID, number),
		ConditionExpression:       aws.String("attribute_exists(#investment_id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: map[string]string{
			"#investment_id": "investment_id",
			"#status":        "status",
			"#paid_at":       "paid_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Installment{}, nil
		}
		return entities.Installment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Installment{}, nil
	}
	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

// ListPendingDueBefore scans for pendiente installments whose due date is
// strictly before day. Dates are stored as YYYY-MM-DD so string order is
// calendar order.
func (r *InvestmentDynamoRepository) ListPendingDueBefore(ctx context.Context, day time.Time) ([]entities.Installment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.installmentsTable),
		FilterExpression: aws.String("#status = :pending AND #due_date < :day"),
		ExpressionAttributeNames: map[string]string{
			"#status":   "status",
			"#due_date": "due_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPendiente)},
			":day":     &types.AttributeValueMemberS{Value: day.Format(entities.DateLayout)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInstallments(raw)
}

func (r *InvestmentDynamoRepository) installmentsOf(ctx context.Context, investmentID string) ([]entities.Installment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.installmentsTable),
		KeyConditionExpression: aws.String("investment_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: investmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInstallments(raw)
}

func (r *InvestmentDynamoRepository) installmentPuts(installments []entities.Installment) ([]types.TransactWriteItem, error) {
	items := make([]types.TransactWriteItem, 0, len(installments))
	for _, in := range installments {
		av, err := attributevalue.MarshalMap(toInstallmentItem(in))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.installmentsTable),
				Item:      av,
			},
		})
	}
	return items, nil
}

func installmentKey(investmentID string, number int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"investment_id":      &types.AttributeValueMemberS{Value: investmentID},
		"installment_number": &types.AttributeValueMemberN{Value: strconv.Itoa(number)},
	}
}

func unmarshalInstallments(raw []map[string]types.AttributeValue) ([]entities.Installment, error) {
	out := make([]entities.Installment, 0, len(raw))
	for _, m := range raw {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInstallmentItem(it))
	}
	return out, nil
}

func toInvestmentItem(inv entities.Investment) investmentItem {
	return investmentItem{
		ID:                inv.ID,
		Date:              inv.Date.Format(entities.DateLayout),
		Category:          inv.Category,
		Description:       inv.Description,
		TotalValue:        int64(inv.TotalValue),
		InstallmentsCount: inv.InstallmentsCount,
		InstallmentValue:  int64(inv.InstallmentValue),
		PaymentMethod:     inv.PaymentMethod,
		ProductURL:        inv.ProductURL,
		ProductImageURL:   inv.ProductImageURL,
		Version:           inv.Version,
		CreatedAt:         formatTime(inv.CreatedAt),
		UpdatedAt:         formatTime(inv.UpdatedAt),
	}
}

func fromInvestmentItem(it investmentItem) entities.Investment {
	date, _ := time.Parse(entities.DateLayout, it.Date)
	return entities.Investment{
		ID:                it.ID,
		Date:              date,
		Category:          it.Category,
		Description:       it.Description,
		TotalValue:        money.Cents(it.TotalValue),
		InstallmentsCount: it.InstallmentsCount,
		InstallmentValue:  money.Cents(it.InstallmentValue),
		PaymentMethod:     it.PaymentMethod,
		ProductURL:        it.ProductURL,
		ProductImageURL:   it.ProductImageURL,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func toInstallmentItem(in entities.Installment) installmentItem {
	it := installmentItem{
		InvestmentID:      in.InvestmentID,
		InstallmentNumber: in.InstallmentNumber,
		ID:                in.ID,
		Amount:            int64(in.Amount),
		DueDate:           in.DueDate.Format(entities.DateLayout),
		Status:            string(in.Status),
		CreatedAt:         formatTime(in.CreatedAt),
	}
	if in.PaidAt != nil {
		it.PaidAt = formatTime(*in.PaidAt)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	due, _ := time.Parse(entities.DateLayout, it.DueDate)
	in := entities.Installment{
		ID:                it.ID,
		InvestmentID:      it.InvestmentID,
		InstallmentNumber: it.InstallmentNumber,
		Amount:            money.Cents(it.Amount),
		DueDate:           due,
		Status:            entities.InstallmentStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
	}
	if it.PaidAt != "" {
		t := parseTime(it.PaidAt)
		in.PaidAt = &t
	}
	return in
}
