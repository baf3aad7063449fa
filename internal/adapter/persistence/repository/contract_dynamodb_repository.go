package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
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
	defaultContractsTableName = "contracts"
	contractsEventMonthIndex  = "event_month-index"
)

type serviceItemAV struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    string `dynamodbav:"price"`
	Quantity int    `dynamodbav:"quantity"`
}

type storeItemAV struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    int64  `dynamodbav:"price_cents"`
	Quantity int    `dynamodbav:"quantity"`
}

type workflowTaskAV struct {
	ID    string `dynamodbav:"id"`
	Title string `dynamodbav:"title"`
	Done  bool   `dynamodbav:"done"`
	Due   string `dynamodbav:"due,omitempty"`
	Note  string `dynamodbav:"note,omitempty"`
}

type workflowCategoryAV struct {
	ID    string           `dynamodbav:"id"`
	Name  string           `dynamodbav:"name"`
	Tasks []workflowTaskAV `dynamodbav:"tasks"`
}

type contractItem struct {
	ID              string `dynamodbav:"id"`
	ClientName      string `dynamodbav:"client_name"`
	ClientEmail     string `dynamodbav:"client_email,omitempty"`
	ClientPhone     string `dynamodbav:"client_phone,omitempty"`
	EventType       string `dynamodbav:"event_type"`
	EventDate       string `dynamodbav:"event_date"`
	EventMonth      string `dynamodbav:"event_month,omitempty"`
	EventTime       string `dynamodbav:"event_time"`
	EventLocation   string `dynamodbav:"event_location,omitempty"`
	PackageTitle    string `dynamodbav:"package_title,omitempty"`
	PackageDuration string `dynamodbav:"package_duration,omitempty"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	Message         string `dynamodbav:"message,omitempty"`

	Services   []serviceItemAV `dynamodbav:"services"`
	StoreItems []storeItemAV   `dynamodbav:"store_items"`

	TravelFee       int64 `dynamodbav:"travel_fee_cents"`
	TotalAmount     int64 `dynamodbav:"total_amount_cents"`
	DepositAmount   int64 `dynamodbav:"deposit_amount_cents"`
	RemainingAmount int64 `dynamodbav:"remaining_amount_cents"`

	DepositPaid      bool   `dynamodbav:"deposit_paid"`
	FinalPaymentPaid bool   `dynamodbav:"final_payment_paid"`
	EventCompleted   bool   `dynamodbav:"event_completed"`
	Status           string `dynamodbav:"status,omitempty"`

	Workflow []workflowCategoryAV `dynamodbav:"workflow,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: event_month-index (PK: event_month, "YYYY-MM" of event_date)
//
// Edits, flags, status and workflow are each written with targeted
// UpdateItem calls so none of them overwrites a concurrent write of another.

type ContractDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI, tableName string) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultContractsTableName),
		now:       time.Now,
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalContracts(raw)
}

func (r *ContractDynamoRepository) ListByEventMonth(ctx context.Context, yearMonth string) ([]entities.Contract, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsEventMonthIndex),
		KeyConditionExpression: aws.String("event_month = :m"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m": &types.AttributeValueMemberS{Value: yearMonth},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalContracts(raw)
}

// Update writes the editable fields and the amount snapshot. Flags are left
// untouched and status is only written when c carries one. It returns a zero
// Contract when the id does not exist.
func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it := toContractItem(c)
	services, err := attributevalue.Marshal(it.Services)
	if err != nil {
		return entities.Contract{}, err
	}
	store, err := attributevalue.Marshal(it.StoreItems)
	if err != nil {
		return entities.Contract{}, err
	}

	return r.update(ctx, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		names := map[string]string{"#updated_at": "updated_at"}
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		var set, remove []string

		setAttr := func(attr string, v types.AttributeValue) {
			names["#"+attr] = attr
			vals[":"+attr] = v
			set = append(set, "#"+attr+" = :"+attr)
		}
		optionalString := func(attr, v string) {
			if v == "" {
				names["#"+attr] = attr
				remove = append(remove, "#"+attr)
				return
			}
			setAttr(attr, &types.AttributeValueMemberS{Value: v})
		}
		cents := func(v int64) types.AttributeValue {
			return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
		}

		setAttr("client_name", &types.AttributeValueMemberS{Value: it.ClientName})
		optionalString("client_email", it.ClientEmail)
		optionalString("client_phone", it.ClientPhone)
		setAttr("event_type", &types.AttributeValueMemberS{Value: it.EventType})
		setAttr("event_date", &types.AttributeValueMemberS{Value: it.EventDate})
		optionalString("event_month", it.EventMonth)
		setAttr("event_time", &types.AttributeValueMemberS{Value: it.EventTime})
		optionalString("event_location", it.EventLocation)
		optionalString("package_title", it.PackageTitle)
		optionalString("package_duration", it.PackageDuration)
		setAttr("payment_method", &types.AttributeValueMemberS{Value: it.PaymentMethod})
		optionalString("message", it.Message)
		setAttr("services", services)
		setAttr("store_items", store)
		setAttr("travel_fee_cents", cents(it.TravelFee))
		setAttr("total_amount_cents", cents(it.TotalAmount))
		setAttr("deposit_amount_cents", cents(it.DepositAmount))
		setAttr("remaining_amount_cents", cents(it.RemainingAmount))
		if it.Status != "" {
			setAttr("status", &types.AttributeValueMemberS{Value: it.Status})
		}
		set = append(set, "#updated_at = :updated_at")

		expr := "SET " + strings.Join(set, ", ")
		if len(remove) > 0 {
			expr += " REMOVE " + strings.Join(remove, ", ")
		}
		return expr, vals, names
	})
}

func (r *ContractDynamoRepository) SetFlag(ctx context.Context, id string, flag entities.ContractFlag, value bool) (entities.Contract, error) {
	attr := map[entities.ContractFlag]string{
		entities.ContractFlagDepositPaid:      "deposit_paid",
		entities.ContractFlagFinalPaymentPaid: "final_payment_paid",
		entities.ContractFlagEventCompleted:   "event_completed",
	}[flag]

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #flag = :value, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":value":      &types.AttributeValueMemberBOOL{Value: value},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#flag":       attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// SetStatus writes an explicit status; an empty status removes the override.
func (r *ContractDynamoRepository) SetStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if status == "" {
			return "SET #updated_at = :updated_at REMOVE #status", vals, names
		}
		vals[":status"] = &types.AttributeValueMemberS{Value: string(status)}
		return "SET #status = :status, #updated_at = :updated_at", vals, names
	})
}

// SetWorkflow replaces the production checklist. An empty workflow removes
// it so the default applies again.
func (r *ContractDynamoRepository) SetWorkflow(ctx context.Context, id string, wf []entities.WorkflowCategory) (entities.Contract, error) {
	av, err := attributevalue.Marshal(toWorkflowAV(wf))
	if err != nil {
		return entities.Contract{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#workflow":   "workflow",
			"#updated_at": "updated_at",
		}
		if len(wf) == 0 {
			return "SET #updated_at = :updated_at REMOVE #workflow", vals, names
		}
		vals[":workflow"] = av
		return "SET #workflow = :workflow, #updated_at = :updated_at", vals, names
	})
}

// MarkDepositPaid sets deposit_paid only if it is not already set. A
// contract that was already paid yields interfaces.ErrDepositAlreadyMarked;
// a missing contract yields a zero Contract.
func (r *ContractDynamoRepository) MarkDepositPaid(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#deposit_paid) OR #deposit_paid = :false)"),
		UpdateExpression:    aws.String("SET #deposit_paid = :true, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":updated_at": &types.AttributeValueMemberS{Value: r.now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#deposit_paid": "deposit_paid",
			"#updated_at":   "updated_at",
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Contract{}, nil
			}
			return entities.Contract{}, fmt.Errorf("contract %s: %w", id, interfaces.ErrDepositAlreadyMarked)
		}
		return entities.Contract{}, err
	}
	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stringKey("id", id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ContractDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Contract, error) {
	now := r.now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}
	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func unmarshalContracts(raw []map[string]types.AttributeValue) ([]entities.Contract, error) {
	out := make([]entities.Contract, 0, len(raw))
	for _, m := range raw {
		var it contractItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromContractItem(it))
	}
	return out, nil
}

// eventMonth is the GSI key; contracts without a valid date stay out of it.
func eventMonth(eventDate string) string {
	if _, err := time.Parse(entities.DateLayout, eventDate); err != nil {
		return ""
	}
	return eventDate[:7]
}

func toContractItem(c entities.Contract) contractItem {
	services := make([]serviceItemAV, 0, len(c.Services))
	for _, s := range c.Services {
		services = append(services, serviceItemAV{ID: s.ID, Name: s.Name, Price: s.Price, Quantity: s.Quantity})
	}
	store := make([]storeItemAV, 0, len(c.StoreItems))
	for _, s := range c.StoreItems {
		store = append(store, storeItemAV{ID: s.ID, Name: s.Name, Price: int64(s.Price), Quantity: s.Quantity})
	}
	return contractItem{
		ID:               c.ID,
		ClientName:       c.ClientName,
		ClientEmail:      c.ClientEmail,
		ClientPhone:      c.ClientPhone,
		EventType:        c.EventType,
		EventDate:        c.EventDate,
		EventMonth:       eventMonth(c.EventDate),
		EventTime:        c.EventTime,
		EventLocation:    c.EventLocation,
		PackageTitle:     c.PackageTitle,
		PackageDuration:  c.PackageDuration,
		PaymentMethod:    c.PaymentMethod,
		Message:          c.Message,
		Services:         services,
		StoreItems:       store,
		TravelFee:        int64(c.TravelFee),
		TotalAmount:      int64(c.TotalAmount),
		DepositAmount:    int64(c.DepositAmount),
		RemainingAmount:  int64(c.RemainingAmount),
		DepositPaid:      c.DepositPaid,
		FinalPaymentPaid: c.FinalPaymentPaid,
		EventCompleted:   c.EventCompleted,
		Status:           string(c.Status),
		Workflow:         toWorkflowAV(c.Workflow),
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	services := make([]entities.ServiceItem, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.ServiceItem{ID: s.ID, Name: s.Name, Price: s.Price, Quantity: s.Quantity})
	}
	store := make([]entities.StoreItem, 0, len(it.StoreItems))
	for _, s := range it.StoreItems {
		store = append(store, entities.StoreItem{ID: s.ID, Name: s.Name, Price: money.Cents(s.Price), Quantity: s.Quantity})
	}
	return entities.Contract{
		ID:               it.ID,
		ClientName:       it.ClientName,
		ClientEmail:      it.ClientEmail,
		ClientPhone:      it.ClientPhone,
		EventType:        it.EventType,
		EventDate:        it.EventDate,
		EventTime:        it.EventTime,
		EventLocation:    it.EventLocation,
		PackageTitle:     it.PackageTitle,
		PackageDuration:  it.PackageDuration,
		PaymentMethod:    it.PaymentMethod,
		Message:          it.Message,
		Services:         services,
		StoreItems:       store,
		TravelFee:        money.Cents(it.TravelFee),
		TotalAmount:      money.Cents(it.TotalAmount),
		DepositAmount:    money.Cents(it.DepositAmount),
		RemainingAmount:  money.Cents(it.RemainingAmount),
		DepositPaid:      it.DepositPaid,
		FinalPaymentPaid: it.FinalPaymentPaid,
		EventCompleted:   it.EventCompleted,
		Status:           entities.ContractStatus(it.Status),
		Workflow:         fromWorkflowAV(it.Workflow),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func toWorkflowAV(wf []entities.WorkflowCategory) []workflowCategoryAV {
	if len(wf) == 0 {
		return nil
	}
	out := make([]workflowCategoryAV, 0, len(wf))
	for _, cat := range wf {
		tasks := make([]workflowTaskAV, 0, len(cat.Tasks))
		for _, t := range cat.Tasks {
			tasks = append(tasks, workflowTaskAV{ID: t.ID, Title: t.Title, Done: t.Done, Due: t.Due, Note: t.Note})
		}
		out = append(out, workflowCategoryAV{ID: cat.ID, Name: cat.Name, Tasks: tasks})
	}
	return out
}

func fromWorkflowAV(wf []workflowCategoryAV) []entities.WorkflowCategory {
	if len(wf) == 0 {
		return nil
	}
	out := make([]entities.WorkflowCategory, 0, len(wf))
	for _, cat := range wf {
		tasks := make([]entities.WorkflowTask, 0, len(cat.Tasks))
		for _, t := range cat.Tasks {
			tasks = append(tasks, entities.WorkflowTask{ID: t.ID, Title: t.Title, Done: t.Done, Due: t.Due, Note: t.Note})
		}
		out = append(out, entities.WorkflowCategory{ID: cat.ID, Name: cat.Name, Tasks: tasks})
	}
	return out
}
